package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-snake-bench/models"
)

const (
	FieldTestID  = "test_id"
	FieldTestIDs = "test_ids"
	FieldUserID  = "user_id"
	FieldStatus  = "status"
)

// MaxBatchSize caps the number of tests run by one batch request.
const MaxBatchSize = 200

// RequestValidator checks the smaller request payloads: collections, runs,
// bans and moderation filters.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CollectionRequest:
		return v.validateCollection(ctx, value, fields...)
	case *models.CollectionRequest:
		return v.validateCollection(ctx, *value, fields...)

	case models.AddTestRequest:
		if strings.TrimSpace(value.TestID) == "" {
			return ErrEmptyTestID
		}
		return nil

	case models.StartRunRequest:
		if strings.TrimSpace(value.TestID) == "" {
			return ErrEmptyTestID
		}
		return nil

	case models.RunTestsRequest:
		return v.validateRunTests(ctx, value, fields...)
	case *models.RunTestsRequest:
		return v.validateRunTests(ctx, *value, fields...)

	case models.BanRequest:
		if strings.TrimSpace(value.UserID) == "" {
			return ErrEmptyUserID
		}
		return nil

	case models.TestStatus:
		if _, err := models.ParseTestStatus(string(value)); err != nil {
			return ErrInvalidStatus
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCollection(_ context.Context, request models.CollectionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription}
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
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRunTests(_ context.Context, request models.RunTestsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTestIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldTestIDs:
			if len(request.TestIDs) == 0 {
				return ErrEmptyTestIDs
			}
			if len(request.TestIDs) > MaxBatchSize {
				return ErrTooManyTests
			}
			for _, id := range request.TestIDs {
				if strings.TrimSpace(id) == "" {
					return ErrEmptyTestID
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
