package http

import (
	"net/http"

	"github.com/MKhiriev/go-snake-bench/models"
)

func (h *Handler) engineUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := h.services.EngineService.CheckUsage(r.Context(), identityFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err, "error checking engine usage")
		return
	}

	writeJSON(w, r, usage, http.StatusOK)
}

func (h *Handler) analyse(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding analyse request")
		return
	}

	analysis, err := h.services.EngineService.Analyse(r.Context(), identityFromRequest(r), req)
	if err != nil {
		writeServiceError(w, r, err, "engine analysis failed")
		return
	}

	writeJSON(w, r, analysis, http.StatusOK)
}
