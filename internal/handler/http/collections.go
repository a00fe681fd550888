package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-snake-bench/internal/service"
	"github.com/MKhiriev/go-snake-bench/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listMyCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.services.CollectionService.ListMyCollections(r.Context(), identityFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err, "error listing collections")
		return
	}

	writeJSON(w, r, nonNil(collections), http.StatusOK)
}

func (h *Handler) createCollection(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCollectionRequest(w, r)
	if !ok {
		return
	}

	collection, err := h.services.CollectionService.CreateCollection(r.Context(), identityFromRequest(r), req)
	if err != nil {
		writeServiceError(w, r, err, "error creating collection")
		return
	}

	writeJSON(w, r, collection, http.StatusCreated)
}

func (h *Handler) updateCollection(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCollectionRequest(w, r)
	if !ok {
		return
	}

	collection, err := h.services.CollectionService.UpdateCollection(r.Context(), identityFromRequest(r), chi.URLParam(r, "collectionID"), req)
	if err != nil {
		writeServiceError(w, r, err, "error updating collection")
		return
	}

	writeJSON(w, r, collection, http.StatusOK)
}

func (h *Handler) deleteCollection(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CollectionService.DeleteCollection(r.Context(), identityFromRequest(r), chi.URLParam(r, "collectionID")); err != nil {
		writeServiceError(w, r, err, "error deleting collection")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCollection(w http.ResponseWriter, r *http.Request) {
	collection, err := h.services.CollectionService.GetCollection(r.Context(), identityFromRequest(r), chi.URLParam(r, "collectionID"))
	if err != nil {
		writeServiceError(w, r, err, "error reading collection")
		return
	}

	collection.Tests = nonNil(collection.Tests)
	writeJSON(w, r, collection, http.StatusOK)
}

func (h *Handler) getSharedCollection(w http.ResponseWriter, r *http.Request) {
	collection, err := h.services.CollectionService.GetSharedCollection(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, r, err, "error reading shared collection")
		return
	}

	collection.Tests = nonNil(collection.Tests)
	writeJSON(w, r, collection, http.StatusOK)
}

func (h *Handler) addCollectionTest(w http.ResponseWriter, r *http.Request) {
	var req models.AddTestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding add-test request")
		return
	}
	if err := h.requestValidator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid add-test request")
		return
	}

	err := h.services.CollectionService.AddTest(r.Context(), identityFromRequest(r), chi.URLParam(r, "collectionID"), req.TestID)
	if err != nil {
		writeServiceError(w, r, err, "error adding test to collection")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeCollectionTest(w http.ResponseWriter, r *http.Request) {
	err := h.services.CollectionService.RemoveTest(r.Context(), identityFromRequest(r), chi.URLParam(r, "collectionID"), chi.URLParam(r, "testID"))
	if err != nil {
		writeServiceError(w, r, err, "error removing test from collection")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) regenerateShareSlug(w http.ResponseWriter, r *http.Request) {
	collection, err := h.services.CollectionService.RegenerateShareSlug(r.Context(), identityFromRequest(r), chi.URLParam(r, "collectionID"))
	if err != nil {
		writeServiceError(w, r, err, "error regenerating share slug")
		return
	}

	writeJSON(w, r, collection, http.StatusOK)
}

func (h *Handler) decodeCollectionRequest(w http.ResponseWriter, r *http.Request) (models.CollectionRequest, bool) {
	var req models.CollectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, "error decoding collection")
		return req, false
	}
	if err := h.requestValidator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid collection")
		return req, false
	}
	return req, true
}
