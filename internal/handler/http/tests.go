package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-snake-bench/internal/service"
	"github.com/MKhiriev/go-snake-bench/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPublicTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.services.TestService.ListPublicTests(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error listing public tests")
		return
	}

	writeJSON(w, r, nonNil(tests), http.StatusOK)
}

func (h *Handler) listMyTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.services.TestService.ListMyTests(r.Context(), identityFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err, "error listing own tests")
		return
	}

	writeJSON(w, r, nonNil(tests), http.StatusOK)
}

func (h *Handler) getTest(w http.ResponseWriter, r *http.Request) {
	test, err := h.services.TestService.GetTest(r.Context(), identityFromRequest(r), chi.URLParam(r, "testID"))
	if err != nil {
		writeServiceError(w, r, err, "error reading test")
		return
	}

	writeJSON(w, r, test, http.StatusOK)
}

func (h *Handler) createTest(w http.ResponseWriter, r *http.Request) {
	var req models.TestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding test")
		return
	}

	test, err := h.services.TestService.CreateTest(r.Context(), identityFromRequest(r), req)
	if err != nil {
		writeServiceError(w, r, err, "error creating test")
		return
	}

	writeJSON(w, r, test, http.StatusCreated)
}

func (h *Handler) updateTest(w http.ResponseWriter, r *http.Request) {
	var req models.TestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding test")
		return
	}

	test, err := h.services.TestService.UpdateTest(r.Context(), identityFromRequest(r), chi.URLParam(r, "testID"), req)
	if err != nil {
		writeServiceError(w, r, err, "error updating test")
		return
	}

	writeJSON(w, r, test, http.StatusOK)
}

func (h *Handler) deleteTest(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TestService.DeleteTest(r.Context(), identityFromRequest(r), chi.URLParam(r, "testID")); err != nil {
		writeServiceError(w, r, err, "error deleting test")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resubmitTest(w http.ResponseWriter, r *http.Request) {
	test, err := h.services.TestService.Resubmit(r.Context(), identityFromRequest(r), chi.URLParam(r, "testID"))
	if err != nil {
		writeServiceError(w, r, err, "error resubmitting test")
		return
	}

	writeJSON(w, r, test, http.StatusOK)
}

// listTestsByStatus serves the moderation queue. Without ?status= it lists
// pending tests.
func (h *Handler) listTestsByStatus(w http.ResponseWriter, r *http.Request) {
	status := models.TestStatusPending
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = models.TestStatus(raw)
	}

	tests, err := h.services.TestService.ListTestsByStatus(r.Context(), identityFromRequest(r), status)
	if err != nil {
		writeServiceError(w, r, err, "error listing tests by status")
		return
	}

	writeJSON(w, r, nonNil(tests), http.StatusOK)
}

func (h *Handler) createAdminTest(w http.ResponseWriter, r *http.Request) {
	var req models.TestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding test")
		return
	}

	test, err := h.services.TestService.CreateAdminTest(r.Context(), identityFromRequest(r), req)
	if err != nil {
		writeServiceError(w, r, err, "error creating admin test")
		return
	}

	writeJSON(w, r, test, http.StatusCreated)
}

// moderateTest applies approve, reject, perma-reject or make-private. The
// body with a reason is optional.
func (h *Handler) moderateTest(w http.ResponseWriter, r *http.Request) {
	action, err := service.ParseModerationAction(chi.URLParam(r, "action"))
	if err != nil {
		writeServiceError(w, r, err, "unknown moderation action")
		return
	}

	var req models.ModerationRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeServiceError(w, r, err, "error decoding moderation request")
		return
	}

	test, err := h.services.TestService.Moderate(r.Context(), identityFromRequest(r), chi.URLParam(r, "testID"), action, req.Reason)
	if err != nil {
		writeServiceError(w, r, err, fmt.Sprintf("error applying %s", action))
		return
	}

	writeJSON(w, r, test, http.StatusOK)
}

func (h *Handler) pruneMemberships(w http.ResponseWriter, r *http.Request) {
	removed, err := h.services.TestService.PruneOrphanMemberships(r.Context(), identityFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err, "error pruning memberships")
		return
	}

	writeJSON(w, r, map[string]int64{"removed": removed}, http.StatusOK)
}

// nonNil makes empty listings encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
