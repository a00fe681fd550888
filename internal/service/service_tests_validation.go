package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snake-bench/internal/validators"
	"github.com/MKhiriev/go-snake-bench/models"
)

// TestValidationService checks test content before it is stored. The youId
// invariant is enforced here on every create and update.
type TestValidationService struct {
	TestService

	validator        validators.Validator
	requestValidator validators.Validator
}

func NewTestValidationService() TestServiceWrapper {
	return &TestValidationService{
		validator:        validators.NewTestValidator(),
		requestValidator: validators.NewRequestValidator(),
	}
}

func (v *TestValidationService) Wrap(inner TestService) TestService {
	v.TestService = inner
	return v
}

func (v *TestValidationService) CreateTest(ctx context.Context, identity models.Identity, req models.TestRequest) (models.Test, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Test{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.TestService.CreateTest(ctx, identity, req)
}

func (v *TestValidationService) CreateAdminTest(ctx context.Context, identity models.Identity, req models.TestRequest) (models.Test, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Test{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.TestService.CreateAdminTest(ctx, identity, req)
}

func (v *TestValidationService) UpdateTest(ctx context.Context, identity models.Identity, testID string, req models.TestRequest) (models.Test, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Test{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.TestService.UpdateTest(ctx, identity, testID, req)
}

func (v *TestValidationService) ListTestsByStatus(ctx context.Context, identity models.Identity, status models.TestStatus) ([]models.Test, error) {
	if err := v.requestValidator.Validate(ctx, status); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.TestService.ListTestsByStatus(ctx, identity, status)
}
