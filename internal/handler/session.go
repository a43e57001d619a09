package handler

import (
	"errors"
	"net/http"

	"github.com/fortipass/fortipass-go/internal/model"
	"github.com/fortipass/fortipass-go/internal/service"
)

// SessionHandler handles HTTP requests for operator sessions.
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// HandleOpen handles POST /api/v1/session requests.
func (h *SessionHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	var req model.SessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Open(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPassphraseRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidPassphrase):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
