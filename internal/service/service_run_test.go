package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-snake-bench/internal/adapter"
	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/mock"
	"github.com/MKhiriev/go-snake-bench/internal/notify"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

// memRuns is an in-memory store.RunRepository with the same conditional
// claim and patch semantics as the SQL one.
type memRuns struct {
	mu      sync.Mutex
	runs    map[string]models.TestRun
	claimed map[string]time.Time
}

func newMemRuns() *memRuns {
	return &memRuns{runs: make(map[string]models.TestRun), claimed: make(map[string]time.Time)}
}

func (m *memRuns) CreateRun(_ context.Context, run models.TestRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[run.ID] = run
	return nil
}

func (m *memRuns) GetRun(_ context.Context, runID string) (models.TestRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[runID]
	if !ok {
		return models.TestRun{}, store.ErrRunNotFound
	}
	return run, nil
}

func (m *memRuns) ClaimRun(_ context.Context, runID string, now, staleBefore time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[runID]
	if !ok || run.Status != models.RunStatusRunning {
		return false, nil
	}
	if claimedAt, taken := m.claimed[runID]; taken && !claimedAt.Before(staleBefore) {
		return false, nil
	}
	m.claimed[runID] = now
	return true, nil
}

func (m *memRuns) CompleteRun(_ context.Context, runID string, result models.RunResult) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[runID]
	if !ok || run.Status != models.RunStatusRunning {
		return false, nil
	}
	result.Apply(&run)
	m.runs[runID] = run
	return true, nil
}

func (m *memRuns) ListRuns(_ context.Context, testID, userID string) ([]models.TestRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.TestRun
	for _, r := range m.runs {
		if r.TestID == testID && r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeBot struct {
	moveFn func(ctx context.Context, url string, payload models.BotMoveRequest) (models.BotResponse, error)
	calls  atomic.Int32
}

func (f *fakeBot) Move(ctx context.Context, url string, payload models.BotMoveRequest) (models.BotResponse, error) {
	f.calls.Add(1)
	return f.moveFn(ctx, url, payload)
}

func jsonBot(status int, body string) *fakeBot {
	return &fakeBot{moveFn: func(context.Context, string, models.BotMoveRequest) (models.BotResponse, error) {
		return models.BotResponse{StatusCode: status, Body: body, Elapsed: 42 * time.Millisecond}, nil
	}}
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func runnableTest() models.Test {
	return models.Test{
		ID:     "t1",
		Status: models.TestStatusApproved,
		Board: models.Board{
			Height: 11,
			Width:  11,
			Snakes: []models.Snake{{ID: "me", Body: []models.Coord{{X: 1, Y: 1}}}},
		},
		YouID:             "me",
		ExpectedSafeMoves: []string{"left", "up"},
	}
}

func newTestRunSvc(t *testing.T, ctrl *gomock.Controller, bot *fakeBot) (*runService, *memRuns, *mock.MockTestRepository) {
	t.Helper()
	runs := newMemRuns()
	tests := mock.NewMockTestRepository(ctrl)

	svc := &runService{
		runRepository:  runs,
		testRepository: tests,
		bot:            bot,
		notifier:       notify.NewLocalNotifier(),
		concurrency:    4,
		claimTTL:       40 * time.Second,
		idGenerator:    &sequenceIDs{},
		now:            func() time.Time { return fixedNow },
		logger:         logger.Nop(),
	}
	return svc, runs, tests
}

func startRun(t *testing.T, svc *runService, runs *memRuns, botURL string) models.TestRun {
	t.Helper()
	run := models.TestRun{ID: "r1", TestID: "t1", UserID: "owner", BotURL: botURL, Status: models.RunStatusRunning, StartedAt: fixedNow}
	require.NoError(t, runs.CreateRun(context.Background(), run))
	return run
}

// ─────────────────────────────────────────────
// StartTestRun
// ─────────────────────────────────────────────

func TestRunService_StartTestRun_NoNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	bot := jsonBot(200, `{"move":"up"}`)
	svc, runs, tests := newTestRunSvc(t, ctrl, bot)

	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)

	run, err := svc.StartTestRun(context.Background(), ownerIdentity, "t1", " http://bot ")

	require.NoError(t, err)
	assert.Equal(t, models.RunStatusRunning, run.Status)
	assert.Equal(t, "http://bot", run.BotURL)
	assert.Zero(t, bot.calls.Load())

	stored, err := runs.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, run, stored)
}

func TestRunService_StartTestRun_InvisibleTest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tests := newTestRunSvc(t, ctrl, jsonBot(200, "{}"))

	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(ownedTest(models.TestStatusPending), nil)

	_, err := svc.StartTestRun(context.Background(), otherIdentity, "t1", "http://bot")
	assert.ErrorIs(t, err, ErrTestNotFound)
}

// ─────────────────────────────────────────────
// ExecuteTestRun
// ─────────────────────────────────────────────

func TestRunService_Execute_Passed(t *testing.T) {
	ctrl := gomock.NewController(t)
	bot := jsonBot(200, `{"move":"up","shout":"hi"}`)
	bot.moveFn = func(_ context.Context, url string, payload models.BotMoveRequest) (models.BotResponse, error) {
		assert.Equal(t, "http://bot/move", url)
		assert.Equal(t, "me", payload.You.ID)
		assert.Equal(t, "t1", payload.Game.ID)
		assert.Equal(t, 500, payload.Game.Timeout)
		require.NotNil(t, payload.Game.Ruleset)
		assert.Equal(t, "standard", payload.Game.Ruleset.Name)
		return models.BotResponse{StatusCode: 200, Body: `{"move":"up","shout":"hi"}`, Elapsed: 42 * time.Millisecond}, nil
	}
	svc, runs, tests := newTestRunSvc(t, ctrl, bot)
	startRun(t, svc, runs, "http://bot/")

	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)

	run, err := svc.ExecuteTestRun(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, run.Status)
	require.NotNil(t, run.Move)
	assert.Equal(t, "up", *run.Move)
	require.NotNil(t, run.Shout)
	assert.Equal(t, "hi", *run.Shout)
	require.NotNil(t, run.Passed)
	assert.True(t, *run.Passed)
	assert.Equal(t, int64(42), *run.ResponseTimeMs)
	assert.Equal(t, 200, *run.HTTPStatus)
	assert.NotNil(t, run.CompletedAt)
}

func TestRunService_Execute_PassedSemantics(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		passed bool
	}{
		{name: "unsafe move", body: `{"move":"down"}`, passed: false},
		{name: "case sensitive", body: `{"move":"UP"}`, passed: false},
		{name: "non-string move", body: `{"move":1}`, passed: false},
		{name: "missing move", body: `{}`, passed: false},
		{name: "array body", body: `["up"]`, passed: false},
		{name: "safe move", body: `{"move":"left"}`, passed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, runs, repo := newTestRunSvc(t, ctrl, jsonBot(200, tt.body))
			startRun(t, svc, runs, "http://bot")
			repo.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)

			run, err := svc.ExecuteTestRun(context.Background(), "r1")

			require.NoError(t, err)
			assert.Equal(t, models.RunStatusCompleted, run.Status)
			assert.Equal(t, tt.passed, *run.Passed)
		})
	}
}

func TestRunService_Execute_NonJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, runs, tests := newTestRunSvc(t, ctrl, jsonBot(502, strings.Repeat("x", 1500)))
	startRun(t, svc, runs, "http://bot")
	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)

	run, err := svc.ExecuteTestRun(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, models.RunStatusFailed, run.Status)
	assert.Equal(t, "Non-JSON response (status 502)", *run.Error)
	assert.Len(t, *run.RawResponse, MaxRawResponseLength)
	assert.Equal(t, 502, *run.HTTPStatus)
}

func TestRunService_Execute_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, runs, tests := newTestRunSvc(t, ctrl, jsonBot(500, `{"error": "boom"}`))
	startRun(t, svc, runs, "http://bot")
	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)

	run, err := svc.ExecuteTestRun(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, models.RunStatusFailed, run.Status)
	assert.Equal(t, "HTTP 500", *run.Error)
	assert.Equal(t, `{"error":"boom"}`, *run.RawResponse)
	assert.Nil(t, run.Move)
}

func TestRunService_Execute_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	bot := &fakeBot{moveFn: func(context.Context, string, models.BotMoveRequest) (models.BotResponse, error) {
		return models.BotResponse{Elapsed: 7 * time.Millisecond}, errors.New("connection refused")
	}}
	svc, runs, tests := newTestRunSvc(t, ctrl, bot)
	startRun(t, svc, runs, "http://bot")
	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)

	run, err := svc.ExecuteTestRun(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, models.RunStatusFailed, run.Status)
	assert.Equal(t, "connection refused", *run.Error)
	assert.Nil(t, run.HTTPStatus)
	assert.Nil(t, run.RawResponse)
	assert.Equal(t, int64(7), *run.ResponseTimeMs)
}

func TestRunService_Execute_BodyOverLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	bot := &fakeBot{moveFn: func(context.Context, string, models.BotMoveRequest) (models.BotResponse, error) {
		return models.BotResponse{Elapsed: 90 * time.Millisecond}, fmt.Errorf("%w: limit is 1048576 bytes", adapter.ErrResponseTooLarge)
	}}
	svc, runs, tests := newTestRunSvc(t, ctrl, bot)
	startRun(t, svc, runs, "http://bot")
	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)

	run, err := svc.ExecuteTestRun(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, models.RunStatusFailed, run.Status)
	assert.Equal(t, "response body too large: limit is 1048576 bytes", *run.Error)
	assert.False(t, *run.Passed)
	assert.Nil(t, run.RawResponse)
	assert.Equal(t, int64(90), *run.ResponseTimeMs)
}

func TestRunService_Execute_RawResponseKeepsBotBytes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "error status",
			status: 503,
			body:   "{\n  \"zeta\": 1,\n  \"alpha\": 12345678901234567890,\n  \"ratio\": 1.10\n}",
			want:   `{"zeta":1,"alpha":12345678901234567890,"ratio":1.10}`,
		},
		{
			name:   "success",
			status: 200,
			body:   `{ "shout": "ok", "move": "up", "seq": 9007199254740993 }`,
			want:   `{"shout":"ok","move":"up","seq":9007199254740993}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, runs, repo := newTestRunSvc(t, ctrl, jsonBot(tt.status, tt.body))
			startRun(t, svc, runs, "http://bot")
			repo.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)

			run, err := svc.ExecuteTestRun(context.Background(), "r1")

			require.NoError(t, err)
			require.NotNil(t, run.RawResponse)
			assert.Equal(t, tt.want, *run.RawResponse)
		})
	}
}

func TestRunService_Execute_RecordedFailures(t *testing.T) {
	missingYou := runnableTest()
	missingYou.YouID = "ghost"

	tests := []struct {
		name    string
		botURL  string
		test    models.Test
		testErr error
		want    string
	}{
		{name: "test deleted", botURL: "http://bot", testErr: store.ErrTestNotFound, want: "Test not found"},
		{name: "you missing", botURL: "http://bot", test: missingYou, want: "Snake with youId ghost not found on board"},
		{name: "empty url", botURL: "  ", test: runnableTest(), want: "Bot URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bot := jsonBot(200, `{"move":"up"}`)
			svc, runs, repo := newTestRunSvc(t, ctrl, bot)
			startRun(t, svc, runs, tt.botURL)
			repo.EXPECT().GetTest(gomock.Any(), "t1").Return(tt.test, tt.testErr)

			run, err := svc.ExecuteTestRun(context.Background(), "r1")

			require.NoError(t, err)
			assert.Equal(t, models.RunStatusFailed, run.Status)
			assert.Equal(t, tt.want, *run.Error)
			assert.Zero(t, bot.calls.Load())
		})
	}
}

func TestRunService_Execute_NotRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, runs, tests := newTestRunSvc(t, ctrl, jsonBot(200, `{"move":"up"}`))
	startRun(t, svc, runs, "http://bot")
	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)

	_, err := svc.ExecuteTestRun(context.Background(), "r1")
	require.NoError(t, err)

	_, err = svc.ExecuteTestRun(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrRunNotRunning)

	_, err = svc.ExecuteTestRun(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRunService_Execute_ConcurrentCallersSingleTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	release := make(chan struct{})
	bot := &fakeBot{moveFn: func(context.Context, string, models.BotMoveRequest) (models.BotResponse, error) {
		<-release
		return models.BotResponse{StatusCode: 200, Body: `{"move":"up"}`}, nil
	}}
	svc, runs, tests := newTestRunSvc(t, ctrl, bot)
	startRun(t, svc, runs, "http://bot")
	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil).AnyTimes()

	const callers = 8
	var wg sync.WaitGroup
	var succeeded, rejected atomic.Int32
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ExecuteTestRun(context.Background(), "r1")
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, ErrRunNotRunning):
				rejected.Add(1)
			}
		}()
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(callers-1), rejected.Load())
	assert.Equal(t, int32(1), bot.calls.Load())
}

func TestRunService_Execute_RetakesStaleClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	bot := jsonBot(200, `{"move":"up"}`)
	svc, runs, tests := newTestRunSvc(t, ctrl, bot)
	startRun(t, svc, runs, "http://bot")

	// an executor claimed the run and never wrote the terminal patch
	claimed, err := runs.ClaimRun(context.Background(), "r1", fixedNow, fixedNow.Add(-svc.claimTTL))
	require.NoError(t, err)
	require.True(t, claimed)

	svc.now = func() time.Time { return fixedNow.Add(10 * time.Second) }
	_, err = svc.ExecuteTestRun(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrRunNotRunning)
	assert.Zero(t, bot.calls.Load())

	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)
	svc.now = func() time.Time { return fixedNow.Add(svc.claimTTL + time.Second) }

	run, err := svc.ExecuteTestRun(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, run.Status)
	assert.Equal(t, int32(1), bot.calls.Load())
}

func TestNewRunService_ClaimTTLFollowsBotTimeout(t *testing.T) {
	svc := NewRunService(nil, nil, nil, notify.NewLocalNotifier(), config.Workers{RunConcurrency: 2}, config.Adapter{BotTimeout: 5 * time.Second}, logger.Nop())

	assert.Equal(t, 5*time.Second+claimGrace, svc.(*runService).claimTTL)
}

func TestRunService_Execute_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, runs, tests := newTestRunSvc(t, ctrl, jsonBot(200, `{"move":"up"}`))
	startRun(t, svc, runs, "http://bot")
	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)

	events, cancel := svc.notifier.Subscribe("r1")
	defer cancel()

	_, err := svc.ExecuteTestRun(context.Background(), "r1")
	require.NoError(t, err)

	select {
	case run := <-events:
		assert.Equal(t, models.RunStatusCompleted, run.Status)
	case <-time.After(time.Second):
		t.Fatal("no run event published")
	}
}

// ─────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────

func TestRunService_GetRun_OtherUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, runs, _ := newTestRunSvc(t, ctrl, jsonBot(200, "{}"))
	startRun(t, svc, runs, "http://bot")

	_, err := svc.GetRun(context.Background(), otherIdentity, "r1")
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, err = svc.GetRun(context.Background(), adminIdentity, "r1")
	assert.NoError(t, err)
}

func TestRunService_WaitRun_WakesOnCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, runs, tests := newTestRunSvc(t, ctrl, jsonBot(200, `{"move":"up"}`))
	startRun(t, svc, runs, "http://bot")
	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil)

	done := make(chan models.TestRun, 1)
	go func() {
		run, _ := svc.WaitRun(context.Background(), ownerIdentity, "r1", 5*time.Second)
		done <- run
	}()

	_, err := svc.ExecuteTestRun(context.Background(), "r1")
	require.NoError(t, err)

	select {
	case run := <-done:
		assert.Equal(t, models.RunStatusCompleted, run.Status)
	case <-time.After(3 * time.Second):
		t.Fatal("WaitRun did not return")
	}
}

func TestRunService_WaitRun_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, runs, _ := newTestRunSvc(t, ctrl, jsonBot(200, "{}"))
	startRun(t, svc, runs, "http://bot")

	run, err := svc.WaitRun(context.Background(), ownerIdentity, "r1", 20*time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, models.RunStatusRunning, run.Status)
}

// ─────────────────────────────────────────────
// RunTests
// ─────────────────────────────────────────────

func TestRunService_RunTests_IndependentAndOrdered(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tests := newTestRunSvc(t, ctrl, jsonBot(200, `{"move":"up"}`))
	svc.idGenerator = &atomicIDs{}

	tests.EXPECT().GetTest(gomock.Any(), "t1").Return(runnableTest(), nil).AnyTimes()
	tests.EXPECT().GetTest(gomock.Any(), "missing").Return(models.Test{}, store.ErrTestNotFound).AnyTimes()

	outcomes, err := svc.RunTests(context.Background(), ownerIdentity, []string{"t1", "missing", "t1"}, "http://bot")

	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.Equal(t, "t1", outcomes[0].TestID)
	require.NotNil(t, outcomes[0].Run)
	assert.Equal(t, models.RunStatusCompleted, outcomes[0].Run.Status)

	assert.Equal(t, "missing", outcomes[1].TestID)
	assert.Nil(t, outcomes[1].Run)
	assert.Equal(t, ErrTestNotFound.Error(), outcomes[1].Error)

	require.NotNil(t, outcomes[2].Run)
	assert.NotEqual(t, outcomes[0].Run.ID, outcomes[2].Run.ID)
}

type atomicIDs struct{ n atomic.Int64 }

func (a *atomicIDs) Generate() string {
	return "run-" + strings.Repeat("x", int(a.n.Add(1)))
}

// ─────────────────────────────────────────────
// Pure helpers
// ─────────────────────────────────────────────

func TestNormalizeBotURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://bot", want: "http://bot/move"},
		{raw: "http://bot/", want: "http://bot/move"},
		{raw: "http://bot///", want: "http://bot/move"},
		{raw: "  http://bot/move  ", want: "http://bot/move"},
		{raw: "http://bot/move/", want: "http://bot/move"},
		{raw: "http://bot/api", want: "http://bot/api/move"},
		{raw: "", wantErr: true},
		{raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeBotURL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBotURLRequired)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPayload_KeepsGameSettings(t *testing.T) {
	test := runnableTest()
	test.Game = &models.Game{
		ID:      "g1",
		Map:     "arcade",
		Timeout: 250,
		Ruleset: &models.Ruleset{Name: "royale", Version: "2.0"},
	}

	payload, err := buildPayload(test)

	require.NoError(t, err)
	assert.Equal(t, "g1", payload.Game.ID)
	assert.Equal(t, "arcade", payload.Game.Map)
	assert.Equal(t, 250, payload.Game.Timeout)
	assert.Equal(t, "royale", payload.Game.Ruleset.Name)
	assert.NotNil(t, payload.Board.Food)
	assert.NotNil(t, payload.Board.Hazards)
}

func TestBuildPayload_DefaultsMissingRuleset(t *testing.T) {
	test := runnableTest()
	test.Game = &models.Game{Map: "standard"}

	payload, err := buildPayload(test)

	require.NoError(t, err)
	assert.Equal(t, "t1", payload.Game.ID)
	assert.Equal(t, 500, payload.Game.Timeout)
	assert.Equal(t, "1.0.0", payload.Game.Ruleset.Version)
	assert.Equal(t, "custom", payload.Game.Ruleset.Settings["hazardMap"])
}

func TestBuildPayload_NormalizesYou(t *testing.T) {
	test := runnableTest()
	test.Board.Snakes = append(test.Board.Snakes, models.Snake{ID: "other"})
	test.YouID = "other"

	payload, err := buildPayload(test)

	require.NoError(t, err)
	assert.Equal(t, "other", payload.You.ID)
	assert.NotNil(t, payload.You.Body)
	assert.Equal(t, payload.Board.Snakes[1], payload.You)
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("é", 64<<10)

	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "multibyte cut", in: "héllo", limit: 2, want: "hé"},
		{name: "shorter than limit", in: "hi", limit: 10, want: "hi"},
		{name: "exact length", in: "añb", limit: 3, want: "añb"},
		{name: "zero limit", in: "abc", limit: 0, want: ""},
		{name: "long input", in: long, limit: MaxRawResponseLength, want: strings.Repeat("é", MaxRawResponseLength)},
		{name: "emoji", in: "🐍🐍🐍", limit: 2, want: "🐍🐍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
