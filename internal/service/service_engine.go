package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/adapter"
	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/models"
)

// engineService gates the engine-analysis service behind a monthly quota.
// Usage is charged before the external call, so a failed call still
// consumes quota.
type engineService struct {
	userRepository store.UserRepository
	testRepository store.TestRepository

	engine  adapter.EngineClient
	secrets config.Secrets

	monthlyLimit int
	now          func() time.Time

	logger *logger.Logger
}

func NewEngineService(
	users store.UserRepository,
	tests store.TestRepository,
	engine adapter.EngineClient,
	secrets config.Secrets,
	cfg config.App,
	logger *logger.Logger,
) EngineService {
	return &engineService{
		userRepository: users,
		testRepository: tests,
		engine:         engine,
		secrets:        secrets,
		monthlyLimit:   cfg.EngineMonthlyLimit,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *engineService) CheckUsage(ctx context.Context, identity models.Identity) (models.EngineUsage, error) {
	if err := requireUser(identity); err != nil {
		return models.EngineUsage{}, err
	}
	if identity.BannedFromEngine {
		return models.EngineUsage{}, ErrEngineBanned
	}

	month := models.EngineMonth(s.now().UTC())
	if identity.IsSuperAdmin {
		return models.EngineUsage{Allowed: true, Unlimited: true, ResetMonth: month}, nil
	}

	user, err := s.userRepository.GetUserByID(ctx, identity.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.EngineUsage{}, ErrUserNotFound
	}
	if err != nil {
		return models.EngineUsage{}, fmt.Errorf("error reading engine usage: %w", err)
	}

	used := 0
	if user.EngineResetMonth == month {
		used = user.EngineUsageCount
	}

	return models.EngineUsage{
		Allowed:    used < s.monthlyLimit,
		Used:       used,
		Limit:      s.monthlyLimit,
		Remaining:  max(s.monthlyLimit-used, 0),
		ResetMonth: month,
	}, nil
}

func (s *engineService) IncrementUsage(ctx context.Context, identity models.Identity) error {
	if err := requireUser(identity); err != nil {
		return err
	}

	month := models.EngineMonth(s.now().UTC())
	err := s.userRepository.IncrementEngineUsage(ctx, identity.UserID, month)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("error incrementing engine usage: %w", err)
	}
	return nil
}

func (s *engineService) Analyse(ctx context.Context, identity models.Identity, req models.AnalyseRequest) (models.EngineAnalysis, error) {
	log := logger.FromContext(ctx).With().Str("func", "*engineService.Analyse").Str("user_id", identity.UserID).Logger()

	usage, err := s.CheckUsage(ctx, identity)
	if err != nil {
		return models.EngineAnalysis{}, err
	}
	if !usage.Allowed {
		return models.EngineAnalysis{}, ErrEngineQuotaExceeded
	}

	url, password := s.secrets.EngineURL(), s.secrets.EnginePassword()
	if url == "" || password == "" {
		log.Error().Msg("engine url or password is not configured")
		return models.EngineAnalysis{}, ErrEngineNotConfigured
	}

	body, err := s.requestBody(ctx, identity, req)
	if err != nil {
		return models.EngineAnalysis{}, err
	}
	body.Password = password

	if !usage.Unlimited {
		if err = s.IncrementUsage(ctx, identity); err != nil {
			return models.EngineAnalysis{}, err
		}
		usage.Used++
		usage.Remaining = max(usage.Limit-usage.Used, 0)
		usage.Allowed = usage.Used < usage.Limit
	}

	result, err := s.engine.Analyse(ctx, url, body)
	if err != nil {
		log.Err(err).Msg("engine call failed")
		return models.EngineAnalysis{}, fmt.Errorf("%w: %w", ErrEngineCallFailed, err)
	}

	return models.EngineAnalysis{Result: result, Usage: usage}, nil
}

// requestBody builds the engine payload either from a stored test or from
// the explicit board state of req.
func (s *engineService) requestBody(ctx context.Context, identity models.Identity, req models.AnalyseRequest) (models.EngineAnalyseRequest, error) {
	if req.TestID != "" {
		test, err := s.testRepository.GetTest(ctx, req.TestID)
		if errors.Is(err, store.ErrTestNotFound) {
			return models.EngineAnalyseRequest{}, ErrTestNotFound
		}
		if err != nil {
			return models.EngineAnalyseRequest{}, fmt.Errorf("error reading test: %w", err)
		}
		if !canView(test, identity) {
			return models.EngineAnalyseRequest{}, ErrTestNotFound
		}

		payload, err := buildPayload(test)
		if err != nil {
			return models.EngineAnalyseRequest{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.EngineAnalyseRequest{Game: payload.Game, Turn: payload.Turn, Board: payload.Board, You: payload.You}, nil
	}

	if req.Board == nil || req.You == nil {
		return models.EngineAnalyseRequest{}, fmt.Errorf("%w: testId or board and you are required", ErrInvalidDataProvided)
	}

	var game models.Game
	if req.Game != nil {
		game = *req.Game
	}

	return models.EngineAnalyseRequest{
		Game:  game,
		Turn:  req.Turn,
		Board: req.Board.Normalized(),
		You:   *req.You,
	}, nil
}
