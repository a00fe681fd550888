package validators

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-snake-bench/models"
)

const (
	FieldName              = "name"
	FieldDescription       = "description"
	FieldBoard             = "board"
	FieldYouID             = "you_id"
	FieldExpectedSafeMoves = "expected_safe_moves"
	FieldTurn              = "turn"
)

const (
	MaxNameLength        = 120
	MaxDescriptionLength = 2000
)

// TestValidator checks test scenarios. The youId invariant is enforced on
// every create and update: it must name one of the board's snakes.
type TestValidator struct {
}

func NewTestValidator() Validator {
	return &TestValidator{}
}

func (v *TestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TestRequest:
		return v.validateTestRequest(ctx, value, fields...)
	case *models.TestRequest:
		return v.validateTestRequest(ctx, *value, fields...)

	case models.Test:
		return v.validateTestRequest(ctx, requestFromTest(value), fields...)
	case *models.Test:
		return v.validateTestRequest(ctx, requestFromTest(*value), fields...)

	default:
		return ErrUnsupportedType
	}
}

func requestFromTest(t models.Test) models.TestRequest {
	return models.TestRequest{
		Name:              t.Name,
		Description:       t.Description,
		Board:             t.Board,
		Game:              t.Game,
		Turn:              t.Turn,
		YouID:             t.YouID,
		ExpectedSafeMoves: t.ExpectedSafeMoves,
	}
}

func (v *TestValidator) validateTestRequest(_ context.Context, request models.TestRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldBoard, FieldYouID, FieldExpectedSafeMoves, FieldTurn}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(request.Name); err != nil {
				return err
			}
		case FieldDescription:
			if utf8.RuneCountInString(request.Description) > MaxDescriptionLength {
				return ErrDescriptionTooLong
			}
		case FieldBoard:
			if request.Board.Height <= 0 || request.Board.Width <= 0 {
				return ErrInvalidBoardSize
			}
		case FieldYouID:
			if request.YouID == "" {
				return ErrEmptyYouID
			}
			if !slices.ContainsFunc(request.Board.Snakes, func(s models.Snake) bool { return s.ID == request.YouID }) {
				return ErrYouSnakeNotOnBoard
			}
		case FieldExpectedSafeMoves:
			for _, move := range request.ExpectedSafeMoves {
				if !slices.Contains(models.Moves, move) {
					return ErrInvalidMove
				}
			}
		case FieldTurn:
			if request.Turn < 0 {
				return ErrInvalidTurn
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
