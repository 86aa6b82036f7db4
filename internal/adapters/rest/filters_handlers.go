package rest

import (
	"net/http"

	"github.com/srinugalla/the-slice-x/internal/contextkeys"
	"github.com/srinugalla/the-slice-x/internal/core/port"
	usecases_port "github.com/srinugalla/the-slice-x/internal/core/port/usecases_port"
)

type FilterHandler struct {
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCasePort
}

func NewFilterHandler(getFilterOptionsUC usecases_port.GetFilterOptionsUseCasePort) *FilterHandler {
	return &FilterHandler{getFilterOptionsUC: getFilterOptionsUC}
}

// GetFilterOptions отдает значения выпадающих списков. Контакты здесь не участвуют,
// поэтому токен не нужен.
func (h *FilterHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "GetFilterOptions",
	})

	query := r.URL.Query()
	options, err := h.getFilterOptionsUC.Execute(r.Context(), query.Get("state"), query.Get("district"))
	if err != nil {
		logger.Warn("Use case failed", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get filter options")
		return
	}

	RespondWithJSON(w, http.StatusOK, FilterOptionsResponse{
		States:    options.States,
		Districts: options.Districts,
		Mandals:   options.Mandals,
	})
}
