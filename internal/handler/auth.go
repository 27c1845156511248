package handler

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventistan/internal/config"
	"github.com/iliyamo/eventistan/internal/fixtures"
	"github.com/iliyamo/eventistan/internal/logger"
	"github.com/iliyamo/eventistan/internal/middleware"
	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/navigation"
	"github.com/iliyamo/eventistan/internal/repository"
	"github.com/iliyamo/eventistan/internal/session"
	"github.com/iliyamo/eventistan/internal/utils"
)

// AuthHandler bundles dependencies for the demo sign-in endpoints.  There
// is no account store: sign-in checks the shared demo password against the
// fixture users and registration signs the caller in as the demo user.
type AuthHandler struct {
	Cfg         config.AuthConfig
	ForgotDelay time.Duration
	Users       *repository.UserRepo
	Sessions    session.Store
}

func NewAuthHandler(cfg config.AuthConfig, forgotDelay time.Duration, u *repository.UserRepo, s session.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, ForgotDelay: forgotDelay, Users: u, Sessions: s}
}

// ----- DTOs -----

type loginReq struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	SessionID string `json:"session_id"`
}

type registerReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	SessionID       string `json:"session_id"`
}

type forgotReq struct {
	Email string `json:"email"`
}

type authResp struct {
	User    model.User        `json:"user"`
	Access  utils.AccessToken `json:"access"`
	Session *sessionResp      `json:"session,omitempty"`
}

// Login verifies the demo credentials and returns an access token.  When
// a session id is given the session is moved to the dashboard.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	u, err := h.Users.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return h.signIn(c, u, req.SessionID, http.StatusOK, navigation.State.Login)
}

func (r registerReq) validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, model.NewFieldError("name", "is required"))
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		errs = append(errs, model.NewFieldError("email", "is not a valid address"))
	}
	if err := utils.CheckPasswordStrength(r.Password); err != nil {
		errs = append(errs, model.NewFieldError("password", err.Error()))
	}
	if r.Password != r.ConfirmPassword {
		errs = append(errs, model.NewFieldError("confirm_password", "does not match"))
	}
	return model.Validation(errs...)
}

// Register validates the sign-up form and signs the caller in as the demo
// user.  Nothing is stored.  An email that belongs to a fixture account is
// a conflict.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := req.validate(); err != nil {
		return fail(c, err)
	}
	ctx := c.Request().Context()
	if h.Users.Exists(ctx, req.Email) {
		return fail(c, repository.ErrEmailExists)
	}

	u, err := h.Users.GetByID(ctx, fixtures.DemoUserID)
	if err != nil {
		return fail(c, err)
	}
	logger.Info(ctx, "registration accepted", logger.String("email", strings.ToLower(strings.TrimSpace(req.Email))))
	return h.signIn(c, u, req.SessionID, http.StatusCreated, navigation.State.Register)
}

func (h *AuthHandler) signIn(c echo.Context, u model.User, sessionID string, status int, move func(navigation.State) navigation.State) error {
	ctx := c.Request().Context()
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, string(u.Role), h.Cfg.AccessTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	resp := authResp{User: u, Access: access}

	if sessionID != "" {
		st, err := h.Sessions.Load(ctx, sessionID)
		if err != nil {
			return fail(c, err)
		}
		st = move(st)
		if err := h.Sessions.Save(ctx, sessionID, st); err != nil {
			return fail(c, err)
		}
		resp.Session = newSessionResp(sessionID, st)
	}
	logger.Info(ctx, "signed in", logger.String("user_id", u.ID))
	return c.JSON(status, resp)
}

// ForgotPassword simulates sending a reset link.  It waits out the
// configured delay and always reports success for a well-formed email.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return fail(c, model.Validation(model.NewFieldError("email", "is not a valid address")))
	}

	ctx := c.Request().Context()
	if h.ForgotDelay > 0 {
		timer := time.NewTimer(h.ForgotDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fail(c, ctx.Err())
		case <-timer.C:
		}
	}
	logger.Info(ctx, "password reset requested", logger.String("email", email))
	return c.JSON(http.StatusAccepted, echo.Map{
		"sent":    true,
		"email":   email,
		"message": "Check your email for a link to reset your password.",
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, _ := middleware.UserID(c)
	u, err := h.Users.GetByID(c.Request().Context(), uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
