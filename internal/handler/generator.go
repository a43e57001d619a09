package handler

import (
	"errors"
	"net/http"

	"github.com/fortipass/fortipass-go/internal/crypto"
	"github.com/fortipass/fortipass-go/internal/model"
	"github.com/fortipass/fortipass-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation, analysis
// and breach checks.
type GeneratorHandler struct {
	generator *service.GeneratorService
	breaches  *service.BreachService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(gen *service.GeneratorService, breaches *service.BreachService) *GeneratorHandler {
	return &GeneratorHandler{generator: gen, breaches: breaches}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// generates with the default options.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	resp, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidConfiguration) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleAnalyze handles POST /api/v1/analyze requests.
func (h *GeneratorHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.generator.Analyze(r.Context(), req))
}

// HandleBreachCheck handles POST /api/v1/breach-check requests.
func (h *GeneratorHandler) HandleBreachCheck(w http.ResponseWriter, r *http.Request) {
	var req model.BreachCheckRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.breaches.Check(r.Context(), req))
}
