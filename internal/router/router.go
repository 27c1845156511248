package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventistan/internal/handler"
	"github.com/iliyamo/eventistan/internal/middleware"
)

// RegisterRoutes registers routes that need neither authentication nor
// caching.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the catalog endpoints guests can use.  Catalog
// reads go through cache; writes (RSVP, booking, inquiry) accept an
// optional bearer token so signed-in callers are attributed.
//
// Middleware is attached per route.  A group created with middleware also
// claims every unmatched path under its prefix, which would turn unknown
// /v1 paths into auth errors instead of 404s.
func RegisterPublic(e *echo.Echo, ev *handler.EventHandler, vd *handler.VendorHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")

	g.GET("/events", ev.ListEvents, cache)
	g.GET("/events/:id", ev.GetEvent, cache)
	g.GET("/events/:id/share", ev.ShareEvent, cache)
	g.GET("/events/:id/bookings/:booking_id/share", ev.ShareBooking, cache)
	g.GET("/vendors", vd.ListVendors, cache)
	g.GET("/vendors/:id", vd.GetVendor, cache)
	g.GET("/vendors/:id/share", vd.ShareVendor, cache)
	g.GET("/payment-methods", ev.PaymentMethods, cache)

	optional := middleware.OptionalAuth(jwtSecret)
	g.POST("/events/:id/rsvp", ev.RSVP, optional)
	g.POST("/events/:id/bookings/quote", ev.QuoteBooking, optional)
	g.POST("/events/:id/bookings", ev.CreateBooking, optional)
	g.POST("/vendors/:id/inquiries", vd.CreateInquiry, optional)
}

// RegisterAuth registers the demo sign-in routes under /v1/auth and the
// authenticated /v1/me.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/register", a.Register)
	g.POST("/forgot-password", a.ForgotPassword)

	e.GET("/v1/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterSessions registers the view router.  A bearer token is optional;
// it decides whether the session counts as signed in.
func RegisterSessions(e *echo.Echo, s *handler.SessionHandler, jwtSecret string) {
	g := e.Group("/v1/sessions")
	optional := middleware.OptionalAuth(jwtSecret)
	g.POST("", s.CreateSession, optional)
	g.GET("/:id", s.GetSession, optional)
	g.POST("/:id/actions", s.ApplyAction, optional)
	g.DELETE("/:id", s.DeleteSession, optional)
}
