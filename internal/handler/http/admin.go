package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-snake-bench/internal/service"
	"github.com/MKhiriev/go-snake-bench/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AdminService.ListUsers(r.Context(), identityFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err, "error listing users")
		return
	}

	writeJSON(w, r, nonNil(users), http.StatusOK)
}

func (h *Handler) updateUserFlags(w http.ResponseWriter, r *http.Request) {
	var update models.UserFlagsUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, r, err, "error decoding user flags")
		return
	}

	user, err := h.services.AdminService.UpdateUserFlags(r.Context(), identityFromRequest(r), chi.URLParam(r, "userID"), update)
	if err != nil {
		writeServiceError(w, r, err, "error updating user flags")
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) listBannedAccounts(w http.ResponseWriter, r *http.Request) {
	banned, err := h.services.AdminService.ListBannedAccounts(r.Context(), identityFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err, "error listing banned accounts")
		return
	}

	writeJSON(w, r, nonNil(banned), http.StatusOK)
}

func (h *Handler) banAccount(w http.ResponseWriter, r *http.Request) {
	var req models.BanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding ban request")
		return
	}
	if err := h.requestValidator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid ban request")
		return
	}

	banned, err := h.services.AdminService.BanGoogleAccount(r.Context(), identityFromRequest(r), req)
	if err != nil {
		writeServiceError(w, r, err, "error banning account")
		return
	}

	writeJSON(w, r, banned, http.StatusCreated)
}

func (h *Handler) unbanAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AdminService.UnbanGoogleAccount(r.Context(), identityFromRequest(r), chi.URLParam(r, "googleID")); err != nil {
		writeServiceError(w, r, err, "error unbanning account")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
