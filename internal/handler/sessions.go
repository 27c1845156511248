package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventistan/internal/logger"
	"github.com/iliyamo/eventistan/internal/middleware"
	"github.com/iliyamo/eventistan/internal/navigation"
	"github.com/iliyamo/eventistan/internal/session"
)

// SessionHandler exposes the view router.  A session is authenticated
// when the request carries a valid bearer token and the session has not
// logged out since its last sign-in.  After a logout action only a login
// or register action signs the session in again.
type SessionHandler struct {
	Store session.Store
}

func NewSessionHandler(st session.Store) *SessionHandler {
	return &SessionHandler{Store: st}
}

type sessionResp struct {
	ID     string            `json:"id"`
	State  navigation.State  `json:"state"`
	Screen navigation.Screen `json:"screen"`
}

func newSessionResp(id string, st navigation.State) *sessionResp {
	return &sessionResp{ID: id, State: st, Screen: st.Screen()}
}

// load returns the session state with Authenticated synced to the caller.
// signedIn reports whether the request itself carries a valid token.
func (h *SessionHandler) load(c echo.Context) (st navigation.State, signedIn bool, err error) {
	st, err = h.Store.Load(c.Request().Context(), c.Param("id"))
	if err != nil {
		return navigation.State{}, false, err
	}
	_, signedIn = middleware.UserID(c)
	st.Authenticated = signedIn && !st.SignedOut
	return st, signedIn, nil
}

// CreateSession starts a session on the event list.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()
	id, st, err := session.Create(ctx, h.Store)
	if err != nil {
		return fail(c, err)
	}
	_, st.Authenticated = middleware.UserID(c)
	if st.Authenticated {
		if err := h.Store.Save(ctx, id, st); err != nil {
			return fail(c, err)
		}
	}
	return c.JSON(http.StatusCreated, newSessionResp(id, st))
}

// GetSession returns the current state and the screen to render.
func (h *SessionHandler) GetSession(c echo.Context) error {
	st, _, err := h.load(c)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, newSessionResp(c.Param("id"), st))
}

// ApplyAction runs one navigation transition.  Sign-in actions need a
// valid bearer token.  A rejected action leaves the session untouched.
func (h *SessionHandler) ApplyAction(c echo.Context) error {
	var a navigation.Action
	if err := c.Bind(&a); err != nil {
		return badBody(c)
	}
	st, signedIn, err := h.load(c)
	if err != nil {
		return fail(c, err)
	}
	if a.AuthenticatesSession() && !signedIn {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "sign in first"})
	}

	next, err := st.Apply(a)
	if err != nil {
		return fail(c, err)
	}
	ctx := c.Request().Context()
	if err := h.Store.Save(ctx, c.Param("id"), next); err != nil {
		return fail(c, err)
	}
	logger.Debug(ctx, "navigation",
		logger.String("session_id", c.Param("id")),
		logger.String("action", a.Type),
		logger.String("from", string(st.View)),
		logger.String("to", string(next.View)),
	)
	return c.JSON(http.StatusOK, newSessionResp(c.Param("id"), next))
}

// DeleteSession forgets a session.
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	if err := h.Store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
