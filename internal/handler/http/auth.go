package http

import (
	"net/http"

	"github.com/MKhiriev/go-snake-bench/internal/utils"
	"github.com/MKhiriev/go-snake-bench/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding register request")
		return
	}

	resp, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "registration failed")
		return
	}

	writeJSON(w, r, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding login request")
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}

	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) googleSignIn(w http.ResponseWriter, r *http.Request) {
	var req models.GoogleSignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding google sign-in request")
		return
	}

	resp, err := h.services.AuthService.GoogleSignIn(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "google sign-in failed")
		return
	}

	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, _ := utils.GetSessionTokenFromContext(r.Context())

	if err := h.services.AuthService.Logout(r.Context(), token); err != nil {
		writeServiceError(w, r, err, "logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.Me(r.Context(), identityFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err, "error loading current user")
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}
