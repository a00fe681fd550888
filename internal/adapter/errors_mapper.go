package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps the upstream text carried inside a mapped error, in bytes.
const maxErrorBody = 512

// mapUpstreamStatus turns a non-2xx engine or JWKS response into an error
// wrapping one of the ErrUpstream* classes. The status code and a trimmed
// copy of the body are kept in the message for the logs.
func mapUpstreamStatus(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	var class error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		class = ErrUpstreamUnauthorized
	case status == http.StatusTooManyRequests:
		class = ErrUpstreamRateLimited
	case status >= http.StatusInternalServerError:
		class = ErrUpstreamUnavailable
	default:
		class = ErrUpstreamRejected
	}

	body := upstreamBody(resp.Body())
	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("%w: http %d: %s", class, status, body)
}

// upstreamBody trims b and cuts it to maxErrorBody without splitting a rune.
func upstreamBody(b []byte) string {
	body := strings.TrimSpace(string(b))
	if len(body) <= maxErrorBody {
		return body
	}

	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut]
}
