// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/utils"
	"github.com/MKhiriev/go-snake-bench/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// jwksTTL is how long fetched signing keys are trusted before a refresh.
	jwksTTL     = 6 * time.Hour
	jwksTimeout = 10 * time.Second
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

type googleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	jwt.RegisteredClaims
}

type jwkSet struct {
	Keys []jwk `json:"keys"`
}

type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// GoogleIdentityVerifier verifies Google ID tokens against the published
// JWKS. The expected audience is read from [config.Secrets] on every call.
type GoogleIdentityVerifier struct {
	client  *utils.HTTPClient
	jwksURL string
	secrets config.Secrets

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time

	now func() time.Time
}

func NewGoogleIdentityVerifier(cfg config.Adapter, secrets config.Secrets) *GoogleIdentityVerifier {
	return &GoogleIdentityVerifier{
		client:  utils.NewHTTPClient(jwksTimeout),
		jwksURL: cfg.GoogleJWKSURL,
		secrets: secrets,
		keys:    make(map[string]*rsa.PublicKey),
		now:     time.Now,
	}
}

// Verify implements [IdentityVerifier].
func (v *GoogleIdentityVerifier) Verify(ctx context.Context, idToken string) (models.ExternalIdentity, error) {
	clientID := v.secrets.GoogleClientID()
	if clientID == "" {
		return models.ExternalIdentity{}, ErrIdentityNotConfigured
	}
	if strings.TrimSpace(idToken) == "" {
		return models.ExternalIdentity{}, fmt.Errorf("%w: empty token", ErrInvalidIDToken)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(clientID),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)

	claims := &googleClaims{}
	_, err := parser.ParseWithClaims(idToken, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("missing kid")
		}
		return v.key(ctx, kid)
	})
	if err != nil {
		return models.ExternalIdentity{}, fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}

	if !validIssuer(claims.Issuer) {
		return models.ExternalIdentity{}, fmt.Errorf("%w: issuer %q", ErrInvalidIDToken, claims.Issuer)
	}
	if claims.Subject == "" || claims.Email == "" {
		return models.ExternalIdentity{}, fmt.Errorf("%w: missing subject or email", ErrInvalidIDToken)
	}

	return models.ExternalIdentity{
		Subject: claims.Subject,
		Email:   strings.ToLower(claims.Email),
		Name:    claims.Name,
	}, nil
}

func validIssuer(iss string) bool {
	for _, allowed := range googleIssuers {
		if iss == allowed {
			return true
		}
	}
	return false
}

// key returns the cached key for kid, refreshing the set when it is stale or
// the kid is unknown. A failed refresh falls back to a cached key.
func (v *GoogleIdentityVerifier) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key := v.keys[kid]
	stale := v.now().Sub(v.fetchedAt) > jwksTTL
	v.mu.RUnlock()

	if key != nil && !stale {
		return key, nil
	}

	if err := v.refresh(ctx); err != nil {
		if key != nil {
			return key, nil
		}
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()
	if key = v.keys[kid]; key == nil {
		return nil, fmt.Errorf("kid %q not found in jwks", kid)
	}
	return key, nil
}

func (v *GoogleIdentityVerifier) refresh(ctx context.Context) error {
	resp, err := v.client.R().SetContext(ctx).Get(v.jwksURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrJWKSUnavailable, err)
	}
	if err = mapUpstreamStatus(resp); err != nil {
		return fmt.Errorf("%w: %w", ErrJWKSUnavailable, err)
	}

	var set jwkSet
	if err = json.Unmarshal(resp.Body(), &set); err != nil {
		return fmt.Errorf("%w: %w", ErrJWKSUnavailable, err)
	}

	next := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kid == "" || k.Kty != "RSA" {
			continue
		}
		pub, err := rsaFromModExp(k.N, k.E)
		if err != nil {
			continue
		}
		next[k.Kid] = pub
	}
	if len(next) == 0 {
		return fmt.Errorf("%w: no usable keys", ErrJWKSUnavailable)
	}

	v.mu.Lock()
	v.keys = next
	v.fetchedAt = v.now()
	v.mu.Unlock()

	return nil
}

func rsaFromModExp(nB64, eB64 string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(nB64)
	if err != nil {
		return nil, err
	}
	eb, err := base64.RawURLEncoding.DecodeString(eB64)
	if err != nil {
		return nil, err
	}

	e := new(big.Int).SetBytes(eb)
	if !e.IsInt64() || e.Int64() == 0 {
		return nil, fmt.Errorf("invalid exponent")
	}

	return &rsa.PublicKey{N: new(big.Int).SetBytes(nb), E: int(e.Int64())}, nil
}
