package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/eventistan/internal/booking"
	"github.com/iliyamo/eventistan/internal/config"
	"github.com/iliyamo/eventistan/internal/fixtures"
	"github.com/iliyamo/eventistan/internal/handler"
	"github.com/iliyamo/eventistan/internal/middleware"
	"github.com/iliyamo/eventistan/internal/repository"
	"github.com/iliyamo/eventistan/internal/session"
	"github.com/iliyamo/eventistan/internal/utils"
)

const (
	secret   = "router-test-secret"
	password = "eventistan123"
)

var today = time.Date(2025, time.February, 1, 10, 0, 0, 0, time.UTC)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()

	events := repository.NewEventRepo(fixtures.Events())
	methods := repository.NewPaymentMethodRepo(fixtures.PaymentMethods())
	vendors := repository.NewVendorRepo(fixtures.Vendors(), fixtures.VendorReviews())
	users, err := repository.NewUserRepo(fixtures.Users(), password, bcrypt.MinCost)
	require.NoError(t, err)

	auth := config.AuthConfig{JWTSecret: secret, AccessTTL: time.Minute, DemoPassword: password}
	svc := booking.NewService(events, methods, 0, config.BookingConfig{WalletBalance: 5000}.Wallet(),
		booking.WithClock(func() time.Time { return today }))
	store := session.NewMemoryStore(time.Hour)

	ev := handler.NewEventHandler(events, methods, svc)
	ev.Now = func() time.Time { return today }
	vd := handler.NewVendorHandler(vendors)
	vd.Now = func() time.Time { return today }
	org := handler.NewOrganizerHandler(events, users)
	org.Now = func() time.Time { return today }
	forms := handler.NewFormHandler(users)
	forms.Now = func() time.Time { return today }

	e := echo.New()
	RegisterRoutes(e)
	RegisterPublic(e, ev, vd, secret, middleware.NewRedisCache(config.CacheConfig{}, nil))
	RegisterAuth(e, handler.NewAuthHandler(auth, 0, users, store), secret)
	RegisterSessions(e, handler.NewSessionHandler(store), secret)
	RegisterOrganizer(e, org, forms, secret)
	return e
}

func token(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(secret, userID, role, time.Minute)
	require.NoError(t, err)
	return tok.Token
}

func do(e *echo.Echo, method, path, bearer, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := do(newServer(t), http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEvents_ListAndDetails(t *testing.T) {
	t.Parallel()
	e := newServer(t)

	tests := []struct {
		name   string
		path   string
		status int
		total  float64
	}{
		{"all", "/v1/events", http.StatusOK, 3},
		{"city", "/v1/events?city=Lahore", http.StatusOK, 2},
		{"all cities sentinel", "/v1/events?city=All+Cities", http.StatusOK, 3},
		{"search", "/v1/events?q=mehndi", http.StatusOK, 1},
		{"free", "/v1/events?price=free", http.StatusOK, 1},
		{"exact date", "/v1/events?date=2025-01-28", http.StatusOK, 1},
		{"bad price bucket", "/v1/events?price=cheap", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := do(e, http.MethodGet, tt.path, "", "")
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.total, decode(t, rec)["total"])
			}
		})
	}

	rec := do(e, http.MethodGet, "/v1/events/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(266), body["seats_left"])
	assert.Equal(t, "Rs. 5,000", body["price_label"])
	assert.NotContains(t, body, "participants")

	rec = do(e, http.MethodGet, "/v1/events/404", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodGet, "/v1/events/2/share", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com/v1/events/2", decode(t, rec)["url"])
}

func TestEvents_RSVP(t *testing.T) {
	t.Parallel()
	e := newServer(t)

	rec := do(e, http.MethodPost, "/v1/events/1/rsvp", token(t, "2", "user"), `{"status":"going","guests":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "2", body["user_id"])
	assert.Equal(t, "going", body["status"])

	rec = do(e, http.MethodPost, "/v1/events/1/rsvp", "", `{"status":"perhaps"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/v1/events/1/rsvp", "garbage", `{"status":"going"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEvents_Booking(t *testing.T) {
	t.Parallel()
	e := newServer(t)
	contact := `"contact_info":{"name":"Fatima Khan","email":"fatima.khan@example.com","phone":"+92-301-2345678"}`

	rec := do(e, http.MethodPost, "/v1/events/2/bookings/quote", "", `{"seats":3,`+contact+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	quote := decode(t, rec)
	assert.Equal(t, "7500", quote["total"])
	assert.Equal(t, true, quote["can_proceed"])

	rec = do(e, http.MethodPost, "/v1/events/2/bookings", "", `{"seats":2,"payment_method":"wallet",`+contact+`}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	res := decode(t, rec)
	assert.Equal(t, "succeeded", res["outcome"])
	b := res["booking"].(map[string]any)
	assert.Equal(t, "BK1738404000000", b["id"])
	assert.Equal(t, "completed", b["payment_status"])

	rec = do(e, http.MethodPost, "/v1/events/1/bookings", "", `{"seats":2,"payment_method":"wallet",`+contact+`}`)
	require.Equal(t, http.StatusPaymentRequired, rec.Code, rec.Body.String())
	assert.Equal(t, "failed", decode(t, rec)["outcome"])

	rec = do(e, http.MethodPost, "/v1/events/1/bookings", "", `{"seats":1,"payment_method":"wallet"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec), "fields")

	rec = do(e, http.MethodGet, "/v1/events/2/bookings/BK1/share", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec)["text"], "Booking ID: BK1")

	rec = do(e, http.MethodGet, "/v1/events/2/bookings/42/share", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/v1/payment-methods", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rs. 5,000", decode(t, rec)["wallet_balance_label"])
}

func TestVendors(t *testing.T) {
	t.Parallel()
	e := newServer(t)

	rec := do(e, http.MethodGet, "/v1/vendors?city=Karachi", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["total"])

	rec = do(e, http.MethodGet, "/v1/vendors?rating=lots", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/v1/vendors/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Royal Caterers", body["vendor"].(map[string]any)["name"])
	assert.Len(t, body["reviews"], 3)
	assert.Equal(t, "Open today: 10:00 - 16:00", body["today_hours"])

	rec = do(e, http.MethodPost, "/v1/vendors/1/inquiries", "",
		`{"message":"Do you cater for 300?","contact_info":{"name":"Bilal","phone":"+92-321-3456789"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "pending", decode(t, rec)["status"])

	rec = do(e, http.MethodPost, "/v1/vendors/1/inquiries", "", `{"message":" "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/v1/vendors/9", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuth(t *testing.T) {
	t.Parallel()
	e := newServer(t)

	rec := do(e, http.MethodPost, "/v1/auth/login", "", `{"email":"Ahmed@Example.com","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	access := decode(t, rec)["access"].(map[string]any)["access_token"].(string)

	rec = do(e, http.MethodGet, "/v1/me", access, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ahmed Hassan", decode(t, rec)["name"])

	rec = do(e, http.MethodPost, "/v1/auth/login", "", `{"email":"ahmed@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodPost, "/v1/auth/login", "", `{"email":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	register := `{"name":"Sara","email":"%s","password":"longenough","confirm_password":"longenough"}`
	rec = do(e, http.MethodPost, "/v1/auth/register", "", strings.Replace(register, "%s", "ahmed@example.com", 1))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodPost, "/v1/auth/register", "", strings.Replace(register, "%s", "sara@example.com", 1))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, fixtures.DemoUserID, decode(t, rec)["user"].(map[string]any)["id"])

	rec = do(e, http.MethodPost, "/v1/auth/register", "", `{"name":"Sara","email":"sara@example.com","password":"short","confirm_password":"other"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decode(t, rec)["fields"], 2)

	rec = do(e, http.MethodPost, "/v1/auth/forgot-password", "", `{"email":"sara@example.com"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, true, decode(t, rec)["sent"])

	rec = do(e, http.MethodPost, "/v1/auth/forgot-password", "", `{"email":"sara"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessions_Flow(t *testing.T) {
	t.Parallel()
	e := newServer(t)
	organizer := token(t, fixtures.DemoUserID, "organizer")

	rec := do(e, http.MethodPost, "/v1/sessions", "", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	id := created["id"].(string)
	assert.Equal(t, "events", created["state"].(map[string]any)["view"])

	view := func(rec *httptest.ResponseRecorder) string {
		t.Helper()
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		return decode(t, rec)["state"].(map[string]any)["view"].(string)
	}
	actions := "/v1/sessions/" + id + "/actions"

	assert.Equal(t, "login", view(do(e, http.MethodPost, actions, "", `{"type":"navigate","view":"dashboard"}`)))

	rec = do(e, http.MethodPost, actions, "", `{"type":"login"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, "dashboard", view(do(e, http.MethodPost, actions, organizer, `{"type":"login"}`)))
	assert.Equal(t, "my-event-details", view(do(e, http.MethodPost, actions, organizer, `{"type":"open-my-event","event_id":"1"}`)))
	assert.Equal(t, "dashboard", view(do(e, http.MethodPost, actions, organizer, `{"type":"back"}`)))

	rec = do(e, http.MethodPost, actions, organizer, `{"type":"teleport"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["message"], "teleport")

	rec = do(e, http.MethodPost, actions, organizer, `{"type":"select-event"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, "dashboard", view(do(e, http.MethodGet, "/v1/sessions/"+id, organizer, "")))

	rec = do(e, http.MethodDelete, "/v1/sessions/"+id, "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(e, http.MethodGet, "/v1/sessions/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuth_LoginMovesSession(t *testing.T) {
	t.Parallel()
	e := newServer(t)

	rec := do(e, http.MethodPost, "/v1/sessions", "", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode(t, rec)["id"].(string)

	rec = do(e, http.MethodPost, "/v1/auth/login", "", `{"email":"ahmed@example.com","password":"`+password+`","session_id":"`+id+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sess := decode(t, rec)["session"].(map[string]any)
	assert.Equal(t, "dashboard", sess["state"].(map[string]any)["view"])

	rec = do(e, http.MethodPost, "/v1/auth/login", "", `{"email":"ahmed@example.com","password":"`+password+`","session_id":"missing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrganizer(t *testing.T) {
	t.Parallel()
	e := newServer(t)
	organizer := token(t, fixtures.DemoUserID, "organizer")

	rec := do(e, http.MethodGet, "/v1/dashboard", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/v1/dashboard", organizer, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(3), body["total_events"])
	assert.Equal(t, "Rs. 7,500", body["revenue_label"])

	rec = do(e, http.MethodGet, "/v1/my-events/1", token(t, "2", "user"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodGet, "/v1/my-events/1", token(t, "2", "organizer"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code, "not the event's organizer")

	rec = do(e, http.MethodGet, "/v1/my-events/1/participants?status=going", organizer, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), decode(t, rec)["shown"])

	rec = do(e, http.MethodGet, "/v1/my-events/1/participants?status=sleeping", organizer, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/v1/my-events/2/participants.csv", organizer, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "Tech Innovation Summit 2025-participants.csv")
	assert.Len(t, strings.Split(strings.TrimSpace(rec.Body.String()), "\n"), 4)

	rec = do(e, http.MethodPost, "/v1/my-events/1/participants/bulk", organizer, `{"action":"remind","participant_ids":["1-2","1-3"]}`)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, float64(2), decode(t, rec)["count"])

	rec = do(e, http.MethodPost, "/v1/my-events/1/participants/bulk", organizer, `{"action":"refund","participant_ids":["nobody"]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decode(t, rec)["fields"], 2)

	rec = do(e, http.MethodDelete, "/v1/my-events/3", organizer, "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "acknowledged", decode(t, rec)["status"])

	rec = do(e, http.MethodPut, "/v1/profile", organizer, `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPut, "/v1/profile", organizer, `{"bio":"Still organizing."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Still organizing.", decode(t, rec)["bio"])
}

func TestForms(t *testing.T) {
	t.Parallel()
	e := newServer(t)
	organizer := token(t, fixtures.DemoUserID, "organizer")

	rec := do(e, http.MethodPost, "/v1/event-drafts/steps/1", organizer, `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	step := decode(t, rec)
	assert.Equal(t, float64(1), step["next"])
	assert.NotEmpty(t, step["problems"])

	rec = do(e, http.MethodPost, "/v1/event-drafts/steps/1", organizer,
		`{"title":"Qawwali Night","type":"cultural","description":"Live music","date":"2025-03-01","time":"20:00"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(2), decode(t, rec)["next"])

	rec = do(e, http.MethodPost, "/v1/event-drafts/steps/x", organizer, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/v1/event-drafts", organizer, `{
		"title":"Qawwali Night","type":"cultural","description":"Live music",
		"date":"2025-03-01","time":"20:00","venue":"Alhamra","address":"Mall Road",
		"city":"Lahore","capacity":200,"tags":"music, culture"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.Equal(t, "dashboard", created["next_view"])
	assert.Equal(t, "draft", created["event"].(map[string]any)["status"])

	rec = do(e, http.MethodGet, "/v1/vendor-registrations/new", organizer, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(4), decode(t, rec)["steps"])

	rec = do(e, http.MethodPost, "/v1/vendor-registrations/steps/3", organizer, `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUnknownPathsAreNotFound(t *testing.T) {
	t.Parallel()
	e := newServer(t)

	for _, path := range []string{"/v1/nope", "/v1/events/1/nope", "/v1/my-events", "/v1/sessions/abc/nope"} {
		rec := do(e, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}

	rec := do(e, http.MethodGet, "/v1/dashboard", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "known gated routes still need a token")
}

func TestSessions_LogoutHoldsWhileTokenIsValid(t *testing.T) {
	t.Parallel()
	e := newServer(t)
	organizer := token(t, fixtures.DemoUserID, "organizer")

	rec := do(e, http.MethodPost, "/v1/sessions", organizer, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	actions := "/v1/sessions/" + decode(t, rec)["id"].(string) + "/actions"

	state := func(rec *httptest.ResponseRecorder) map[string]any {
		t.Helper()
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		return decode(t, rec)["state"].(map[string]any)
	}

	assert.Equal(t, "dashboard", state(do(e, http.MethodPost, actions, organizer, `{"type":"navigate","view":"dashboard"}`))["view"])

	out := state(do(e, http.MethodPost, actions, organizer, `{"type":"logout"}`))
	assert.Equal(t, "events", out["view"])
	assert.Equal(t, false, out["authenticated"])

	out = state(do(e, http.MethodPost, actions, organizer, `{"type":"navigate","view":"dashboard"}`))
	assert.Equal(t, "login", out["view"], "the token alone does not undo a logout")
	assert.Equal(t, false, out["authenticated"])

	out = state(do(e, http.MethodPost, actions, organizer, `{"type":"login"}`))
	assert.Equal(t, "dashboard", out["view"])
	assert.Equal(t, true, out["authenticated"])
}

func TestForms_WizardDirection(t *testing.T) {
	t.Parallel()
	e := newServer(t)
	organizer := token(t, fixtures.DemoUserID, "organizer")

	rec := do(e, http.MethodPost, "/v1/event-drafts/steps/2?direction=prev", organizer, `{}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	back := decode(t, rec)
	assert.Equal(t, float64(1), back["next"], "going back skips validation")
	assert.Equal(t, false, back["can_go_back"])

	rec = do(e, http.MethodPost, "/v1/event-drafts/steps/1?direction=prev", organizer, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["next"], "stays on the first step")

	rec = do(e, http.MethodPost, "/v1/event-drafts/steps/1?direction=sideways", organizer, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/v1/event-drafts/steps/3", organizer, `{"contact_email":"events@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	last := decode(t, rec)
	assert.Equal(t, float64(3), last["next"])
	assert.Equal(t, true, last["can_submit"])
	assert.Equal(t, true, last["can_go_back"])
}

func TestForms_VendorRegistrationListEdits(t *testing.T) {
	t.Parallel()
	e := newServer(t)
	organizer := token(t, fixtures.DemoUserID, "organizer")

	rec := do(e, http.MethodGet, "/v1/vendor-registrations/new", organizer, "")
	require.Equal(t, http.StatusOK, rec.Code)
	form, err := json.Marshal(decode(t, rec)["form"])
	require.NoError(t, err)

	edit := func(form []byte, list, op string, index int, value string) *httptest.ResponseRecorder {
		body, err := json.Marshal(map[string]any{
			"form": json.RawMessage(form), "list": list, "op": op, "index": index, "value": value,
		})
		require.NoError(t, err)
		return do(e, http.MethodPost, "/v1/vendor-registrations/lists", organizer, string(body))
	}
	next := func(rec *httptest.ResponseRecorder) []byte {
		t.Helper()
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		out, err := json.Marshal(decode(t, rec)["form"])
		require.NoError(t, err)
		return out
	}

	form = next(edit(form, "services", "set", 0, "Catering"))
	form = next(edit(form, "services", "add", 0, ""))
	form = next(edit(form, "services", "set", 1, "Decor"))
	form = next(edit(form, "payment_methods", "toggle", 0, "JazzCash"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(form, &got))
	assert.Equal(t, []any{"Catering", "Decor"}, got["services"])
	assert.Equal(t, []any{"JazzCash"}, got["payment_methods"])

	rec = edit(form, "services", "remove", 5, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "list index out of range", decode(t, rec)["error"])

	rec = edit(form, "payment_methods", "toggle", 0, "Bitcoin")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/v1/vendor-registrations/lists", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
