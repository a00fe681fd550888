// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/service"
	"github.com/MKhiriev/go-snake-bench/models"
	"github.com/go-chi/chi/v5"
)

// startRun records a running run and hands it to the background executor.
// With "execute": false, or when the queue is full, the run stays running
// and the client triggers it through the execute endpoint.
func (h *Handler) startRun(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.StartRunRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding run request")
		return
	}
	if err := h.requestValidator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid run request")
		return
	}

	run, err := h.services.RunService.StartTestRun(r.Context(), identityFromRequest(r), req.TestID, req.BotURL)
	if err != nil {
		writeServiceError(w, r, err, "error starting run")
		return
	}

	if req.Execute == nil || *req.Execute {
		if h.runQueue == nil || !h.runQueue.Enqueue(run.ID) {
			log.Warn().Str("run_id", run.ID).Msg("run was not queued; it waits for an explicit execute")
		}
	}

	writeJSON(w, r, run, http.StatusAccepted)
}

func (h *Handler) runTests(w http.ResponseWriter, r *http.Request) {
	var req models.RunTestsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding batch run request")
		return
	}
	if err := h.requestValidator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid batch run request")
		return
	}

	outcomes, err := h.services.RunService.RunTests(r.Context(), identityFromRequest(r), req.TestIDs, req.BotURL)
	if err != nil {
		writeServiceError(w, r, err, "error running tests")
		return
	}

	writeJSON(w, r, outcomes, http.StatusOK)
}

func (h *Handler) getRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.services.RunService.GetRun(r.Context(), identityFromRequest(r), chi.URLParam(r, "runID"))
	if err != nil {
		writeServiceError(w, r, err, "error reading run")
		return
	}

	writeJSON(w, r, run, http.StatusOK)
}

// waitRun long-polls a run. ?timeout= takes a Go duration ("10s") or whole
// seconds; the service caps it.
func (h *Handler) waitRun(w http.ResponseWriter, r *http.Request) {
	timeout, err := parseTimeout(r.URL.Query().Get("timeout"))
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid wait timeout")
		return
	}

	run, err := h.services.RunService.WaitRun(r.Context(), identityFromRequest(r), chi.URLParam(r, "runID"), timeout)
	if err != nil {
		writeServiceError(w, r, err, "error waiting for run")
		return
	}

	writeJSON(w, r, run, http.StatusOK)
}

// executeRun runs a started run in the request. Only the run owner or an
// admin may trigger it.
func (h *Handler) executeRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")

	if _, err := h.services.RunService.GetRun(r.Context(), identityFromRequest(r), runID); err != nil {
		writeServiceError(w, r, err, "error reading run")
		return
	}

	run, err := h.services.RunService.ExecuteTestRun(r.Context(), runID)
	if err != nil {
		writeServiceError(w, r, err, "error executing run")
		return
	}

	writeJSON(w, r, run, http.StatusOK)
}

func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.services.RunService.ListRuns(r.Context(), identityFromRequest(r), chi.URLParam(r, "testID"))
	if err != nil {
		writeServiceError(w, r, err, "error listing runs")
		return
	}

	writeJSON(w, r, nonNil(runs), http.StatusOK)
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q", raw)
	}
	return d, nil
}
