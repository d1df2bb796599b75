package find_drivers_status_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightbid/internal/dto"
	"freightbid/internal/service/matching"
	"freightbid/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	freightBidID := mux.Vars(r)["id"]

	status, err := h.service.GetFindDriversStatus(r.Context(), freightBidID)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrFreightBidNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, matching.ErrInvalidFreightBidID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FindDriversStatus{
		DriversFound:      status.DriversFound,
		TotalDriversFound: status.TotalDriversFound,
		RequestTime:       status.RequestTime,
		StatusMessage:     status.StatusMessage,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
