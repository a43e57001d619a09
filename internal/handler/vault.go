package handler

import (
	"errors"
	"net/http"

	"github.com/fortipass/fortipass-go/internal/model"
	"github.com/fortipass/fortipass-go/internal/service"
	"github.com/go-chi/chi/v5"
)

// VaultHandler handles HTTP requests for vault entry operations.
type VaultHandler struct {
	service *service.VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(svc *service.VaultService) *VaultHandler {
	return &VaultHandler{service: svc}
}

// HandleAddEntry handles POST /api/v1/vault requests.
func (h *VaultHandler) HandleAddEntry(w http.ResponseWriter, r *http.Request) {
	var req model.VaultEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.AddEntry(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEntry) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleListEntries handles GET /api/v1/vault requests, filtered by the
// optional q and category query parameters.
func (h *VaultHandler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	filter := model.VaultFilter{
		Search:   r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	entries, err := h.service.ListEntries(r.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// HandleMetrics handles GET /api/v1/vault/metrics requests.
func (h *VaultHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.service.Metrics(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, metrics)
}

// HandleRevealPassword handles GET /api/v1/vault/{id}/password requests.
func (h *VaultHandler) HandleRevealPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.RevealPassword(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}

// HandleRemoveEntry handles DELETE /api/v1/vault/{id} requests.
func (h *VaultHandler) HandleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveEntry(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func entryID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" || len(id) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid entry id"))
		return "", false
	}
	return id, true
}
