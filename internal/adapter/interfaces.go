// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the go-snake-bench
// server: the bot move call, the engine-analysis service and the Google
// identity provider.
//
// Every adapter is built on the shared resty wrapper [utils.HTTPClient].
// Non-2xx engine and JWKS responses wrap one of the ErrUpstream* classes.
// The bot client never maps statuses: a bot answering with an error is a
// failed run, not an adapter error.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-snake-bench/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BotClient performs the single HTTP exchange with a user bot.
type BotClient interface {
	// Move POSTs payload as JSON to url and returns the raw outcome: the
	// status code, the body read as text and the elapsed time. Non-2xx
	// responses are not errors; only transport failures are.
	Move(ctx context.Context, url string, payload models.BotMoveRequest) (models.BotResponse, error)
}

// EngineClient forwards analysis requests to the engine service.
type EngineClient interface {
	// Analyse POSTs req to url and returns the engine's JSON body verbatim.
	Analyse(ctx context.Context, url string, req models.EngineAnalyseRequest) (json.RawMessage, error)
}

// IdentityVerifier verifies ID tokens issued by an external identity
// provider.
type IdentityVerifier interface {
	// Verify checks the token signature, issuer, audience and expiry and
	// returns the verified subject.
	Verify(ctx context.Context, idToken string) (models.ExternalIdentity, error)
}
