package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/srinugalla/the-slice-x/internal/contextkeys"
	"github.com/srinugalla/the-slice-x/internal/contracts"
	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/srinugalla/the-slice-x/internal/core/port"
	usecases_port "github.com/srinugalla/the-slice-x/internal/core/port/usecases_port"
)

const (
	maxRequestBodySize = 64 << 10

	genericStoreErrorMessage = "Failed to retrieve listings"
)

type RevealContactHandler struct {
	revealUC          usecases_port.RevealContactUseCasePort
	contracts         *contracts.Registry
	pageDefaults      PageDefaults
	exposeStoreErrors bool
	metrics           port.MetricsPort
}

type RevealContactHandlerConfig struct {
	PageDefaults PageDefaults
	// ExposeStoreErrors отдает клиенту текст ошибки хранилища вместо общего сообщения.
	ExposeStoreErrors bool
}

func NewRevealContactHandler(
	revealUC usecases_port.RevealContactUseCasePort,
	registry *contracts.Registry,
	cfg RevealContactHandlerConfig,
	metrics port.MetricsPort,
) *RevealContactHandler {
	return &RevealContactHandler{
		revealUC:          revealUC,
		contracts:         registry,
		pageDefaults:      cfg.PageDefaults.withFallbacks(),
		exposeStoreErrors: cfg.ExposeStoreErrors,
		metrics:           metrics,
	}
}

func (h *RevealContactHandler) RevealContact(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "RevealContact",
	})

	caller, ok := IdentityFromContext(r.Context())
	if !ok {
		logger.Error("Handler reached without authenticated caller", nil, nil)
		h.observe(port.KindUnknown, port.OutcomeUnauthorized)
		WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err != nil {
		logger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		h.observe(port.KindUnknown, port.OutcomeBadRequest)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	decoded, err := h.contracts.DecodeAndValidate(revealRequestSchema, revealRequestVersion, body)
	if err != nil {
		logger.Warn("Request body rejected", port.Fields{"error": err.Error()})
		h.observe(port.KindUnknown, port.OutcomeBadRequest)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := h.pageDefaults.buildRevealRequest(decoded)
	if err != nil {
		logger.Warn("Request body rejected", port.Fields{"error": err.Error()})
		h.observe(port.KindUnknown, port.OutcomeBadRequest)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	kind := requestKind(req)

	result, err := h.revealUC.Execute(r.Context(), caller, req)
	if err != nil {
		h.writeUseCaseError(w, logger, kind, err)
		return
	}

	switch {
	case result.Listing != nil:
		h.observe(kind, port.OutcomeOK)
		RespondWithJSON(w, http.StatusOK, RevealListingResponse{Listing: toListingResponse(*result.Listing)})
	case result.Page != nil:
		h.observe(kind, port.OutcomeOK)
		RespondWithJSON(w, http.StatusOK, toPageResponse(result.Page))
	default:
		logger.Error("Use case returned an empty result", nil, nil)
		h.observe(kind, port.OutcomeInternal)
		WriteJSONError(w, http.StatusInternalServerError, "Server error")
	}
}

func (h *RevealContactHandler) writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, kind string, err error) {
	var storeErr *domain.StoreError

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		h.observe(kind, port.OutcomeUnauthorized)
		WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrBadRequest):
		h.observe(kind, port.OutcomeBadRequest)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
	case errors.Is(err, domain.ErrListingNotFound):
		h.observe(kind, port.OutcomeNotFound)
		WriteJSONError(w, http.StatusNotFound, "Listing not found")
	case errors.As(err, &storeErr):
		logger.Error("Listing store failed", err, port.Fields{"op": storeErr.Op})
		h.observe(kind, port.OutcomeStoreError)
		message := genericStoreErrorMessage
		if h.exposeStoreErrors {
			message = storeErr.Error()
		}
		WriteJSONError(w, http.StatusInternalServerError, message)
	default:
		logger.Error("Unexpected error in reveal use case", err, nil)
		h.observe(kind, port.OutcomeInternal)
		WriteJSONError(w, http.StatusInternalServerError, "Server error")
	}
}

func (h *RevealContactHandler) observe(kind, outcome string) {
	if h.metrics != nil {
		h.metrics.ObserveReveal(kind, outcome)
	}
}
