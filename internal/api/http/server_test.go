package http

import (
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kezig/logistics-service/internal/api/http/handlers"
	"github.com/kezig/logistics-service/internal/auth"
	"github.com/kezig/logistics-service/internal/domain"
	"github.com/kezig/logistics-service/internal/events"
	"github.com/kezig/logistics-service/internal/observability"
	"github.com/kezig/logistics-service/internal/service"
	"github.com/kezig/logistics-service/internal/worker"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return errors.New("duplicate username")
	}
	clone := *user
	r.users[user.Username] = &clone
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) UpdatePasswordHash(_ context.Context, username, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return pgx.ErrNoRows
	}
	user.PasswordHash = hash
	return nil
}

func (r *memUserRepo) UpdateRole(_ context.Context, username string, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Role = role
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, username)
	return nil
}

type memWaybillRepo struct {
	mu       sync.Mutex
	waybills map[string]*domain.Waybill
}

func (r *memWaybillRepo) Create(_ context.Context, w *domain.Waybill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *w
	r.waybills[w.WaybillNumber] = &clone
	return nil
}

func (r *memWaybillRepo) Update(_ context.Context, w *domain.Waybill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.waybills[w.WaybillNumber]
	if !ok || existing.IsDeleted {
		return pgx.ErrNoRows
	}
	clone := *w
	r.waybills[w.WaybillNumber] = &clone
	return nil
}

func (r *memWaybillRepo) SoftDelete(_ context.Context, waybillNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.waybills[waybillNumber]
	if !ok || existing.IsDeleted {
		return pgx.ErrNoRows
	}
	existing.IsDeleted = true
	return nil
}

func (r *memWaybillRepo) GetByNumber(_ context.Context, waybillNumber string) (*domain.Waybill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.waybills[waybillNumber]
	if !ok || existing.IsDeleted {
		return nil, pgx.ErrNoRows
	}
	clone := *existing
	return &clone, nil
}

type memTrackingRepo struct {
	mu        sync.Mutex
	trackings map[string]*domain.Tracking
}

func (r *memTrackingRepo) Create(_ context.Context, t *domain.Tracking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *t
	r.trackings[t.ID] = &clone
	return nil
}

func (r *memTrackingRepo) GetByID(_ context.Context, id string) (*domain.Tracking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tracking, ok := r.trackings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *tracking
	return &clone, nil
}

func (r *memTrackingRepo) ListByWaybill(_ context.Context, waybillNumber string) ([]domain.Tracking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Tracking
	for _, t := range r.trackings {
		if t.WaybillNumber == waybillNumber {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTrackingRepo) Update(_ context.Context, t *domain.Tracking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trackings[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *t
	r.trackings[t.ID] = &clone
	return nil
}

func (r *memTrackingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trackings[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.trackings, id)
	return nil
}

type memOperationLogRepo struct {
	mu      sync.Mutex
	entries []domain.OperationLog
}

func (r *memOperationLogRepo) Create(_ context.Context, entry *domain.OperationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memOperationLogRepo) snapshot() []domain.OperationLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.OperationLog{}, r.entries...)
}

type testEnv struct {
	app  *fiber.App
	logs *memOperationLogRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hash := func(password string) string {
		h, err := auth.HashPassword(password, 4)
		require.NoError(t, err)
		return h
	}

	userRepo := &memUserRepo{users: map[string]*domain.User{
		"alice": {Username: "alice", PasswordHash: hash("correct-pw"), Role: domain.RoleAdmin},
		"bob":   {Username: "bob", PasswordHash: hash("bob-pw"), Role: domain.RoleStaff},
	}}
	logRepo := &memOperationLogRepo{}

	logger := zap.NewNop()
	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo: userRepo,
		Codec:    auth.NewTokenCodec("test-secret", 30*time.Minute),
		Sessions: auth.NewSessionRegistry(),
	}, 4, logger)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(logRepo, logger), dispatcher)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 5*time.Second)
	app.Use(AuditInterceptor(authService, dispatcher))

	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "test", nil, nil),
		Sessions:       handlers.NewSessionHandler(authService),
		Users:          handlers.NewUsersHandler(service.NewUserService(userRepo, 4)),
		Waybills:       handlers.NewWaybillsHandler(service.NewWaybillService(&memWaybillRepo{waybills: map[string]*domain.Waybill{}})),
		Trackings:      handlers.NewTrackingsHandler(service.NewTrackingService(&memTrackingRepo{trackings: map[string]*domain.Tracking{}})),
		AuthMiddleware: auth.NewMiddleware(authService),
	})

	return &testEnv{app: app, logs: logRepo}
}

func (e *testEnv) login(t *testing.T, username, password string) *nethttp.Cookie {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(nethttp.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.CookieName {
			require.True(t, cookie.HttpOnly)
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func (e *testEnv) request(t *testing.T, method, target, body string, cookie *nethttp.Cookie) *nethttp.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func TestLoginSetsCookieAndAuthorizes(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "alice", "correct-pw")

	resp := env.request(t, nethttp.MethodPost, "/admin/users/add",
		"", cookie)
	defer resp.Body.Close()
	// Body parsing fails without a form payload, but the guard let us in.
	require.NotEqual(t, nethttp.StatusUnauthorized, resp.StatusCode)
	require.NotEqual(t, nethttp.StatusForbidden, resp.StatusCode)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	req := httptest.NewRequest(nethttp.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := env.app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestStaffForbiddenFromUserManagement(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "bob", "bob-pw")

	resp := env.request(t, nethttp.MethodPost, "/admin/users/add", "", cookie)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
}

func TestStaffAllowedOnWaybills(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "bob", "bob-pw")

	resp := env.request(t, nethttp.MethodPost, "/admin_waybills/",
		`{"waybill_number":"WB-2001","status":"created"}`, cookie)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
}

func TestMissingCookieUnauthorized(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, nethttp.MethodPost, "/admin_waybills/",
		`{"waybill_number":"WB-1"}`, nil)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutRevokesCookie(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "bob", "bob-pw")

	resp := env.request(t, nethttp.MethodPost, "/logout", "", cookie)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	// The old cookie is cryptographically valid but its session is gone.
	resp = env.request(t, nethttp.MethodPost, "/admin_waybills/",
		`{"waybill_number":"WB-1"}`, cookie)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestSecondLoginInvalidatesFirstCookie(t *testing.T) {
	env := newTestEnv(t)
	first := env.login(t, "bob", "bob-pw")
	second := env.login(t, "bob", "bob-pw")

	resp := env.request(t, nethttp.MethodPost, "/admin_waybills/",
		`{"waybill_number":"WB-1","status":"created"}`, first)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, nethttp.MethodPost, "/admin_waybills/",
		`{"waybill_number":"WB-1","status":"created"}`, second)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
}

func TestRefreshRotatesSession(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "bob", "bob-pw")

	resp := env.request(t, nethttp.MethodPost, "/refresh-token", "", cookie)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var refreshed *nethttp.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			refreshed = c
		}
	}
	resp.Body.Close()
	require.NotNil(t, refreshed)
	require.NotEqual(t, cookie.Value, refreshed.Value)

	// The pre-refresh cookie no longer resolves.
	old := env.request(t, nethttp.MethodPost, "/admin_waybills/",
		`{"waybill_number":"WB-9","status":"created"}`, cookie)
	defer old.Body.Close()
	require.Equal(t, nethttp.StatusUnauthorized, old.StatusCode)

	fresh := env.request(t, nethttp.MethodPost, "/admin_waybills/",
		`{"waybill_number":"WB-9","status":"created"}`, refreshed)
	defer fresh.Body.Close()
	require.Equal(t, nethttp.StatusCreated, fresh.StatusCode)
}

func TestAuditRecordsAnonymousRequests(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, nethttp.MethodPost, "/admin_waybills/",
		`{"waybill_number":"WB-1"}`, nil)
	resp.Body.Close()

	entries := env.logs.snapshot()
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	require.Equal(t, domain.AnonymousUser, last.Username)
	require.Equal(t, domain.RoleGuest, last.Role)
	require.Equal(t, "/admin_waybills/", last.Path)
	require.Equal(t, nethttp.MethodPost, last.Method)
	require.Contains(t, last.Payload, "WB-1")
}

func TestAuditRecordsResolvedIdentity(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "alice", "correct-pw")

	resp := env.request(t, nethttp.MethodPost, "/admin/users/update-role", "", cookie)
	resp.Body.Close()

	entries := env.logs.snapshot()
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	require.Equal(t, "alice", last.Username)
	require.Equal(t, domain.RoleAdmin, last.Role)
}
