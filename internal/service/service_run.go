// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-snake-bench/internal/adapter"
	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/notify"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/internal/utils"
	"github.com/MKhiriev/go-snake-bench/models"
)

const (
	// MaxRawResponseLength bounds the stored raw bot response, in runes.
	MaxRawResponseLength = 1000

	DefaultWaitTimeout = 10 * time.Second
	MaxWaitTimeout     = 30 * time.Second

	defaultGameTimeout = 500
	movePath           = "/move"

	// claimGrace is added to the bot timeout to decide when a claim whose
	// executor never finished may be taken over.
	claimGrace = 30 * time.Second
)

type runService struct {
	runRepository  store.RunRepository
	testRepository store.TestRepository

	bot      adapter.BotClient
	notifier notify.RunNotifier

	concurrency int
	claimTTL    time.Duration
	idGenerator utils.IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewRunService(
	runs store.RunRepository,
	tests store.TestRepository,
	bot adapter.BotClient,
	notifier notify.RunNotifier,
	cfg config.Workers,
	adapterCfg config.Adapter,
	logger *logger.Logger,
) RunService {
	concurrency := cfg.RunConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &runService{
		runRepository:  runs,
		testRepository: tests,
		bot:            bot,
		notifier:       notifier,
		concurrency:    concurrency,
		claimTTL:       adapterCfg.BotTimeout + claimGrace,
		idGenerator:    utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

func (s *runService) StartTestRun(ctx context.Context, identity models.Identity, testID, botURL string) (models.TestRun, error) {
	if err := requireUser(identity); err != nil {
		return models.TestRun{}, err
	}

	test, err := s.testRepository.GetTest(ctx, testID)
	if errors.Is(err, store.ErrTestNotFound) {
		return models.TestRun{}, ErrTestNotFound
	}
	if err != nil {
		return models.TestRun{}, fmt.Errorf("error reading test: %w", err)
	}
	if !canView(test, identity) {
		return models.TestRun{}, ErrTestNotFound
	}

	run := models.TestRun{
		ID:        s.idGenerator.Generate(),
		TestID:    testID,
		UserID:    identity.UserID,
		BotURL:    strings.TrimSpace(botURL),
		Status:    models.RunStatusRunning,
		StartedAt: s.now().UTC(),
	}

	if err = s.runRepository.CreateRun(ctx, run); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*runService.StartTestRun").Str("test_id", testID).Msg("error creating run")
		return models.TestRun{}, fmt.Errorf("error creating run: %w", err)
	}

	return run, nil
}

// ExecuteTestRun implements [RunService]. The run is claimed atomically
// before the bot is called, and the terminal patch only applies to a run
// that is still running. Cancelling ctx does not abandon a claimed run.
// A claim older than claimTTL is treated as abandoned and may be retaken.
func (s *runService) ExecuteTestRun(ctx context.Context, runID string) (models.TestRun, error) {
	ctx = context.WithoutCancel(ctx)
	log := logger.FromContext(ctx).With().Str("func", "*runService.ExecuteTestRun").Str("run_id", runID).Logger()

	run, err := s.runRepository.GetRun(ctx, runID)
	if errors.Is(err, store.ErrRunNotFound) {
		return models.TestRun{}, ErrRunNotFound
	}
	if err != nil {
		return models.TestRun{}, fmt.Errorf("error reading run: %w", err)
	}
	if run.Status != models.RunStatusRunning {
		return models.TestRun{}, ErrRunNotRunning
	}

	now := s.now().UTC()
	claimed, err := s.runRepository.ClaimRun(ctx, runID, now, now.Add(-s.claimTTL))
	if err != nil {
		return models.TestRun{}, fmt.Errorf("error claiming run: %w", err)
	}
	if !claimed {
		return models.TestRun{}, ErrRunNotRunning
	}

	result := s.execute(ctx, run)

	patched, err := s.runRepository.CompleteRun(ctx, runID, result)
	if err != nil {
		log.Err(err).Msg("error writing terminal patch")
		return models.TestRun{}, fmt.Errorf("error completing run: %w", err)
	}
	if !patched {
		return models.TestRun{}, ErrRunNotRunning
	}
	result.Apply(&run)

	if err = s.notifier.Publish(ctx, run); err != nil {
		log.Err(err).Msg("error publishing run event")
	}

	log.Info().Str("status", string(run.Status)).Bool("passed", run.Passed != nil && *run.Passed).Msg("run finished")
	return run, nil
}

// execute performs the bot call for run and returns its terminal patch.
// Every failure is recorded in the patch, never returned.
func (s *runService) execute(ctx context.Context, run models.TestRun) models.RunResult {
	test, err := s.testRepository.GetTest(ctx, run.TestID)
	if errors.Is(err, store.ErrTestNotFound) {
		return s.failed("Test not found")
	}
	if err != nil {
		return s.failed(err.Error())
	}

	payload, err := buildPayload(test)
	if err != nil {
		return s.failed(err.Error())
	}

	url, err := NormalizeBotURL(run.BotURL)
	if err != nil {
		return s.failed(err.Error())
	}

	resp, err := s.bot.Move(ctx, url, payload)
	elapsed := resp.Elapsed.Milliseconds()
	if err != nil {
		result := s.failed(err.Error())
		result.ResponseTimeMs = &elapsed
		return result
	}

	return s.interpret(test, resp)
}

// interpret turns a bot response into a terminal patch.
func (s *runService) interpret(test models.Test, resp models.BotResponse) models.RunResult {
	elapsed := resp.Elapsed.Milliseconds()
	status := resp.StatusCode

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, []byte(resp.Body)); err != nil {
		result := s.failed(fmt.Sprintf("Non-JSON response (status %d)", status))
		raw := truncate(resp.Body, MaxRawResponseLength)
		result.HTTPStatus = &status
		result.RawResponse = &raw
		result.ResponseTimeMs = &elapsed
		return result
	}

	// stored as sent, minus insignificant whitespace
	raw := truncate(compacted.String(), MaxRawResponseLength)

	if status < 200 || status > 299 {
		result := s.failed(fmt.Sprintf("HTTP %d", status))
		result.HTTPStatus = &status
		result.RawResponse = &raw
		result.ResponseTimeMs = &elapsed
		return result
	}

	var parsed any
	_ = json.Unmarshal(compacted.Bytes(), &parsed)

	var move, shout *string
	if body, ok := parsed.(map[string]any); ok {
		if m, ok := body["move"].(string); ok {
			move = &m
		}
		if sh, ok := body["shout"].(string); ok {
			shout = &sh
		}
	}

	passed := move != nil && test.IsSafeMove(*move)

	return models.RunResult{
		Status:         models.RunStatusCompleted,
		Move:           move,
		Shout:          shout,
		Passed:         &passed,
		HTTPStatus:     &status,
		RawResponse:    &raw,
		ResponseTimeMs: &elapsed,
		CompletedAt:    s.now().UTC(),
	}
}

func (s *runService) failed(message string) models.RunResult {
	passed := false
	return models.RunResult{
		Status:      models.RunStatusFailed,
		Passed:      &passed,
		Error:       &message,
		CompletedAt: s.now().UTC(),
	}
}

func (s *runService) GetRun(ctx context.Context, identity models.Identity, runID string) (models.TestRun, error) {
	if err := requireUser(identity); err != nil {
		return models.TestRun{}, err
	}

	run, err := s.runRepository.GetRun(ctx, runID)
	if errors.Is(err, store.ErrRunNotFound) {
		return models.TestRun{}, ErrRunNotFound
	}
	if err != nil {
		return models.TestRun{}, fmt.Errorf("error reading run: %w", err)
	}

	if run.UserID != identity.UserID && !identity.IsAdmin && !identity.IsSuperAdmin {
		return models.TestRun{}, ErrRunNotFound
	}
	return run, nil
}

// WaitRun implements [RunService]. On timeout the still running run is
// returned without an error.
func (s *runService) WaitRun(ctx context.Context, identity models.Identity, runID string, timeout time.Duration) (models.TestRun, error) {
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	timeout = min(timeout, MaxWaitTimeout)

	run, err := s.GetRun(ctx, identity, runID)
	if err != nil || run.Status.Terminal() {
		return run, err
	}

	events, cancel := s.notifier.Subscribe(runID)
	defer cancel()

	// the run may have finished between the first read and Subscribe
	if run, err = s.GetRun(ctx, identity, runID); err != nil || run.Status.Terminal() {
		return run, err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-events:
	case <-timer.C:
		return run, nil
	case <-ctx.Done():
		return run, ctx.Err()
	}

	return s.GetRun(ctx, identity, runID)
}

func (s *runService) ListRuns(ctx context.Context, identity models.Identity, testID string) ([]models.TestRun, error) {
	if err := requireUser(identity); err != nil {
		return nil, err
	}

	runs, err := s.runRepository.ListRuns(ctx, testID, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing runs: %w", err)
	}
	return runs, nil
}

func (s *runService) RunTests(ctx context.Context, identity models.Identity, testIDs []string, botURL string) ([]models.RunOutcome, error) {
	if err := requireUser(identity); err != nil {
		return nil, err
	}

	outcomes := make([]models.RunOutcome, len(testIDs))

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i, testID := range testIDs {
		g.Go(func() error {
			outcomes[i] = s.runOne(ctx, identity, testID, botURL)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes, nil
}

func (s *runService) runOne(ctx context.Context, identity models.Identity, testID, botURL string) models.RunOutcome {
	outcome := models.RunOutcome{TestID: testID}

	run, err := s.StartTestRun(ctx, identity, testID, botURL)
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	executed, err := s.ExecuteTestRun(ctx, run.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*runService.runOne").Str("run_id", run.ID).Msg("error executing run")
		outcome.Run = &run
		return outcome
	}

	outcome.Run = &executed
	return outcome
}

// NormalizeBotURL trims raw, strips trailing slashes and appends /move
// unless the URL already ends with it.
func NormalizeBotURL(raw string) (string, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", ErrBotURLRequired
	}

	url = strings.TrimRight(url, "/")
	if url == "" {
		return "", ErrBotURLRequired
	}

	if !strings.HasSuffix(url, movePath) {
		url += movePath
	}
	return url, nil
}

// buildPayload assembles the /move body for test. A test without game
// settings is played under the default ruleset with a 500ms timeout.
func buildPayload(test models.Test) (models.BotMoveRequest, error) {
	test.Board = test.Board.Normalized()

	you, ok := test.You()
	if !ok {
		return models.BotMoveRequest{}, fmt.Errorf("Snake with youId %s not found on board", test.YouID)
	}

	game := models.Game{ID: test.ID}
	if test.Game != nil {
		game.Ruleset = test.Game.Ruleset
		game.Map = test.Game.Map
		game.Timeout = test.Game.Timeout
		if test.Game.ID != "" {
			game.ID = test.Game.ID
		}
	}
	if game.Ruleset == nil {
		game.Ruleset = defaultRuleset()
	}
	if game.Timeout == 0 {
		game.Timeout = defaultGameTimeout
	}

	return models.BotMoveRequest{
		Game:  game,
		Turn:  test.Turn,
		Board: test.Board,
		You:   you,
	}, nil
}

func defaultRuleset() *models.Ruleset {
	return &models.Ruleset{
		Name:    "standard",
		Version: "1.0.0",
		Settings: map[string]any{
			"foodSpawnChance":     0,
			"minimumFood":         0,
			"hazardDamagePerTurn": 100,
			"hazardMap":           "custom",
		},
	}
}

// truncate cuts s to at most limit runes. Only the kept prefix is scanned.
func truncate(s string, limit int) string {
	offset := 0
	for n := 0; n < limit; n++ {
		if offset >= len(s) {
			return s
		}
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return s[:offset]
}
