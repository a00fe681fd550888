package http

import (
	"net/http"

	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// maxTraceIDLength bounds a client-supplied trace id; longer values are
// replaced rather than logged.
const maxTraceIDLength = 128

// withTraceID scopes the request logger to a trace_id and echoes it in the
// response. A reasonable client-supplied id is reused.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = uuid.NewString()
		}

		w.Header().Set(traceIDHeader, traceID)
		ctx := h.logger.WithField("trace_id", traceID).IntoContext(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
