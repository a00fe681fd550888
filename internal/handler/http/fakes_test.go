package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/service"
	"github.com/MKhiriev/go-snake-bench/models"
	"github.com/stretchr/testify/require"
)

// The fakes embed the service interface so a test only supplies the methods
// it exercises. Calling anything else panics, which fails the test loudly.

type fakeAppInfo struct{ version string }

func (f fakeAppInfo) GetVersion(context.Context) models.VersionResponse {
	return models.VersionResponse{Version: f.version, BuildDate: models.BuildInfoUnknown, BuildCommit: models.BuildInfoUnknown}
}

type fakeSessions struct {
	service.SessionService
	identities map[string]models.Identity
	err        error
}

func (f *fakeSessions) Authenticate(_ context.Context, token string) (models.Identity, error) {
	if f.err != nil {
		return models.Identity{}, f.err
	}
	identity, ok := f.identities[token]
	if !ok {
		return models.Identity{}, service.ErrSessionInvalid
	}
	return identity, nil
}

type fakeAuth struct {
	service.AuthService
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	googleFn   func(ctx context.Context, req models.GoogleSignInRequest) (models.AuthResponse, error)
	logoutFn   func(ctx context.Context, token string) error
	meFn       func(ctx context.Context, identity models.Identity) (models.User, error)
}

func (f *fakeAuth) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuth) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuth) GoogleSignIn(ctx context.Context, req models.GoogleSignInRequest) (models.AuthResponse, error) {
	return f.googleFn(ctx, req)
}

func (f *fakeAuth) Logout(ctx context.Context, token string) error {
	return f.logoutFn(ctx, token)
}

func (f *fakeAuth) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	return f.meFn(ctx, identity)
}

type fakeTests struct {
	service.TestService
	listPublicFn func(ctx context.Context) ([]models.Test, error)
	getFn        func(ctx context.Context, identity models.Identity, testID string) (models.Test, error)
	createFn     func(ctx context.Context, identity models.Identity, req models.TestRequest) (models.Test, error)
	moderateFn   func(ctx context.Context, identity models.Identity, testID string, action service.ModerationAction, reason string) (models.Test, error)
	byStatusFn   func(ctx context.Context, identity models.Identity, status models.TestStatus) ([]models.Test, error)
}

func (f *fakeTests) ListPublicTests(ctx context.Context) ([]models.Test, error) {
	return f.listPublicFn(ctx)
}

func (f *fakeTests) GetTest(ctx context.Context, identity models.Identity, testID string) (models.Test, error) {
	return f.getFn(ctx, identity, testID)
}

func (f *fakeTests) CreateTest(ctx context.Context, identity models.Identity, req models.TestRequest) (models.Test, error) {
	return f.createFn(ctx, identity, req)
}

func (f *fakeTests) Moderate(ctx context.Context, identity models.Identity, testID string, action service.ModerationAction, reason string) (models.Test, error) {
	return f.moderateFn(ctx, identity, testID, action, reason)
}

func (f *fakeTests) ListTestsByStatus(ctx context.Context, identity models.Identity, status models.TestStatus) ([]models.Test, error) {
	return f.byStatusFn(ctx, identity, status)
}

type fakeRuns struct {
	service.RunService
	startFn   func(ctx context.Context, identity models.Identity, testID, botURL string) (models.TestRun, error)
	executeFn func(ctx context.Context, runID string) (models.TestRun, error)
	getFn     func(ctx context.Context, identity models.Identity, runID string) (models.TestRun, error)
	waitFn    func(ctx context.Context, identity models.Identity, runID string, timeout time.Duration) (models.TestRun, error)
	batchFn   func(ctx context.Context, identity models.Identity, testIDs []string, botURL string) ([]models.RunOutcome, error)
}

func (f *fakeRuns) StartTestRun(ctx context.Context, identity models.Identity, testID, botURL string) (models.TestRun, error) {
	return f.startFn(ctx, identity, testID, botURL)
}

func (f *fakeRuns) ExecuteTestRun(ctx context.Context, runID string) (models.TestRun, error) {
	return f.executeFn(ctx, runID)
}

func (f *fakeRuns) GetRun(ctx context.Context, identity models.Identity, runID string) (models.TestRun, error) {
	return f.getFn(ctx, identity, runID)
}

func (f *fakeRuns) WaitRun(ctx context.Context, identity models.Identity, runID string, timeout time.Duration) (models.TestRun, error) {
	return f.waitFn(ctx, identity, runID, timeout)
}

func (f *fakeRuns) RunTests(ctx context.Context, identity models.Identity, testIDs []string, botURL string) ([]models.RunOutcome, error) {
	return f.batchFn(ctx, identity, testIDs, botURL)
}

type fakeCollections struct {
	service.CollectionService
	createFn func(ctx context.Context, identity models.Identity, req models.CollectionRequest) (models.Collection, error)
	sharedFn func(ctx context.Context, slug string) (models.CollectionWithTests, error)
	addFn    func(ctx context.Context, identity models.Identity, collectionID, testID string) error
}

func (f *fakeCollections) CreateCollection(ctx context.Context, identity models.Identity, req models.CollectionRequest) (models.Collection, error) {
	return f.createFn(ctx, identity, req)
}

func (f *fakeCollections) GetSharedCollection(ctx context.Context, slug string) (models.CollectionWithTests, error) {
	return f.sharedFn(ctx, slug)
}

func (f *fakeCollections) AddTest(ctx context.Context, identity models.Identity, collectionID, testID string) error {
	return f.addFn(ctx, identity, collectionID, testID)
}

type fakeEngine struct {
	service.EngineService
	usageFn   func(ctx context.Context, identity models.Identity) (models.EngineUsage, error)
	analyseFn func(ctx context.Context, identity models.Identity, req models.AnalyseRequest) (models.EngineAnalysis, error)
}

func (f *fakeEngine) CheckUsage(ctx context.Context, identity models.Identity) (models.EngineUsage, error) {
	return f.usageFn(ctx, identity)
}

func (f *fakeEngine) Analyse(ctx context.Context, identity models.Identity, req models.AnalyseRequest) (models.EngineAnalysis, error) {
	return f.analyseFn(ctx, identity, req)
}

type fakeAdmin struct {
	service.AdminService
	listUsersFn func(ctx context.Context, identity models.Identity) ([]models.User, error)
	banFn       func(ctx context.Context, identity models.Identity, req models.BanRequest) (models.BannedAccount, error)
}

func (f *fakeAdmin) ListUsers(ctx context.Context, identity models.Identity) ([]models.User, error) {
	return f.listUsersFn(ctx, identity)
}

func (f *fakeAdmin) BanGoogleAccount(ctx context.Context, identity models.Identity, req models.BanRequest) (models.BannedAccount, error) {
	return f.banFn(ctx, identity, req)
}

type fakeQueue struct {
	accept bool
	queued []string
}

func (q *fakeQueue) Enqueue(runID string) bool {
	if !q.accept {
		return false
	}
	q.queued = append(q.queued, runID)
	return true
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	userToken       = "user-token"
	adminToken      = "admin-token"
	superAdminToken = "super-token"
)

var (
	userIdentity       = models.Identity{UserID: "u-1", Email: "player@example.com"}
	adminIdentity      = models.Identity{UserID: "a-1", IsAdmin: true}
	superAdminIdentity = models.Identity{UserID: "s-1", IsAdmin: true, IsSuperAdmin: true}
)

func newSessions() *fakeSessions {
	return &fakeSessions{identities: map[string]models.Identity{
		userToken:       userIdentity,
		adminToken:      adminIdentity,
		superAdminToken: superAdminIdentity,
	}}
}

// newTestHandler builds a Handler over svcs. AppInfo and sessions are filled
// in when the test leaves them empty.
func newTestHandler(svcs *service.Services, queue RunQueue, pinger Pinger) *Handler {
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = fakeAppInfo{version: "test-version"}
	}
	if svcs.SessionService == nil {
		svcs.SessionService = newSessions()
	}
	return NewHandler(svcs, queue, pinger, config.Server{}, logger.Nop())
}

func serve(t *testing.T, h *Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rr)
}

func newRequest(method, target string, body io.Reader) *http.Request {
	return httptest.NewRequest(method, target, body)
}

func record(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
