package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventistan/internal/handler"
	"github.com/iliyamo/eventistan/internal/middleware"
	"github.com/iliyamo/eventistan/internal/model"
)

// RegisterOrganizer registers the signed-in screens under /v1.  All routes
// require a valid JWT; the my-events routes also require the organizer
// role.  Like RegisterPublic, middleware is attached per route so unknown
// /v1 paths still answer 404.
func RegisterOrganizer(e *echo.Echo, o *handler.OrganizerHandler, f *handler.FormHandler, jwtSecret string) {
	g := e.Group("/v1")
	auth := middleware.JWTAuth(jwtSecret)

	// ---- Dashboard & profile ----
	g.GET("/dashboard", o.Dashboard, auth)
	g.GET("/profile", o.Profile, auth)
	g.PUT("/profile", o.UpdateProfile, auth)

	// ---- Wizards ----
	g.POST("/event-drafts/steps/:step", f.EventDraftStep, auth)
	g.POST("/event-drafts", f.SubmitEventDraft, auth)
	g.GET("/vendor-registrations/new", f.NewVendorRegistration, auth)
	g.POST("/vendor-registrations/steps/:step", f.VendorRegistrationStep, auth)
	g.POST("/vendor-registrations/lists", f.EditVendorRegistration, auth)
	g.POST("/vendor-registrations", f.SubmitVendorRegistration, auth)

	// ---- My events ----
	organizer := []echo.MiddlewareFunc{auth, middleware.RequireRole(string(model.RoleOrganizer))}
	g.GET("/my-events/:id", o.MyEvent, organizer...)
	g.PUT("/my-events/:id", o.UpdateEvent, organizer...)
	g.DELETE("/my-events/:id", o.DeleteEvent, organizer...)
	g.GET("/my-events/:id/participants", o.Participants, organizer...)
	g.GET("/my-events/:id/participants.csv", o.ExportParticipants, organizer...)
	g.POST("/my-events/:id/participants/bulk", o.BulkAction, organizer...)
}
