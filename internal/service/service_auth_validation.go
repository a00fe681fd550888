package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snake-bench/internal/validators"
	"github.com/MKhiriev/go-snake-bench/models"
)

// AuthValidationService rejects malformed auth payloads before they reach
// the rate limiter, so a typo never costs the client an attempt.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAuthValidator(),
	}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) GoogleSignIn(ctx context.Context, req models.GoogleSignInRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.GoogleSignIn(ctx, req)
}

func (v *AuthValidationService) Logout(ctx context.Context, token string) error {
	return v.inner.Logout(ctx, token)
}

func (v *AuthValidationService) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	return v.inner.Me(ctx, identity)
}
