package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-snake-bench/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldClientID = "client_id"
	FieldIDToken  = "id_token"
)

// MinPasswordLength is the minimum length of a legacy password.
const MinPasswordLength = 8

type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.GoogleSignInRequest:
		return v.validateGoogleSignIn(ctx, value, fields...)
	case *models.GoogleSignInRequest:
		return v.validateGoogleSignIn(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateRegister(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientID, FieldEmail, FieldName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldClientID:
			if strings.TrimSpace(request.ClientID) == "" {
				return ErrEmptyClientID
			}
		case FieldEmail:
			if !validEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldName:
			if err := validateName(request.Name); err != nil {
				return err
			}
		case FieldPassword:
			if utf8.RuneCountInString(request.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateLogin(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientID, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldClientID:
			if strings.TrimSpace(request.ClientID) == "" {
				return ErrEmptyClientID
			}
		case FieldEmail:
			if !validEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			// length is not checked on login: a wrong password is a failed
			// attempt, not a malformed request
			if request.Password == "" {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateGoogleSignIn(_ context.Context, request models.GoogleSignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientID, FieldIDToken}
	}

	for _, f := range fields {
		switch f {
		case FieldClientID:
			if strings.TrimSpace(request.ClientID) == "" {
				return ErrEmptyClientID
			}
		case FieldIDToken:
			if strings.TrimSpace(request.IDToken) == "" {
				return ErrEmptyIDToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
