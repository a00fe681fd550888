package http

import "net/http"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.GetVersion(r.Context()), http.StatusOK)
}

// health reports 503 while the database is unreachable.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			writeServiceError(w, r, errStorageUnavailable, "health check failed: "+err.Error())
			return
		}
	}

	writeJSON(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}
