package driver_bid_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightbid/internal/dto"
	"freightbid/internal/entities"
	"freightbid/internal/pkg/authctx"
	"freightbid/internal/service/driverbid"
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
	claims, ok := authctx.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	freightBidID := mux.Vars(r)["id"]

	var driverBidDTO dto.DriverBidCreate
	err := json.NewDecoder(r.Body).Decode(&driverBidDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverBidModify := entities.DriverBidModify{
		FreightBidID: &freightBidID,
		DriverID:     &claims.UserID,
		TruckID:      &driverBidDTO.TruckID,
		AmountCents:  &driverBidDTO.AmountCents,
		Message:      &driverBidDTO.Message,
	}

	driverBid, err := h.service.CreateDriverBid(r.Context(), driverBidModify)
	if err != nil {
		switch {
		case errors.Is(err, driverbid.ErrFreightBidNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driverbid.ErrMissingRequiredFields),
			errors.Is(err, driverbid.ErrInvalidFreightBidID),
			errors.Is(err, driverbid.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driverbid.ErrBidClosed):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromDriverBid(driverBid)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
