package models

// RegisterRequest is the legacy e-mail/password registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	ClientID string `json:"clientId"`
}

// LoginRequest is the legacy e-mail/password login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	ClientID string `json:"clientId"`
}

// GoogleSignInRequest carries a Google ID token obtained by the browser.
type GoogleSignInRequest struct {
	IDToken  string `json:"idToken"`
	ClientID string `json:"clientId"`
}

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error   string `json:"error"`
	RetryAt *int64 `json:"retryAt,omitempty"`
}

// VersionResponse is returned by the version endpoint. Version is the
// configured release name; the build fields come from the binary.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}
