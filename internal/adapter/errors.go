package adapter

import "errors"

// Upstream status classes, as seen by mapUpstreamStatus.
var (
	ErrUpstreamRejected     = errors.New("upstream rejected the request")
	ErrUpstreamUnauthorized = errors.New("upstream refused the credentials")
	ErrUpstreamRateLimited  = errors.New("upstream is rate limiting")
	ErrUpstreamUnavailable  = errors.New("upstream is unavailable")
)

// ErrResponseTooLarge is returned when a bot or the engine sends a body over
// the configured limit.
var ErrResponseTooLarge = errors.New("response body too large")

var (
	ErrEngineUnavailable     = errors.New("engine request failed")
	ErrInvalidEngineResponse = errors.New("engine returned a non-JSON body")

	ErrIdentityNotConfigured = errors.New("google client id is not configured")
	ErrInvalidIDToken        = errors.New("invalid id token")
	ErrJWKSUnavailable       = errors.New("cannot fetch signing keys")
)
