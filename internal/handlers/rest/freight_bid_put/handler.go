package freight_bid_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightbid/internal/dto"
	"freightbid/internal/entities"
	"freightbid/internal/pkg/authctx"
	"freightbid/internal/service/freightbid"
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

	id := mux.Vars(r)["id"]

	var freightBidDTO dto.FreightBidUpdate
	err := json.NewDecoder(r.Body).Decode(&freightBidDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	freightBidModify := entities.FreightBidModify{
		ID:          &id,
		TruckTypeID: freightBidDTO.TruckTypeID,
		CategoryID:  freightBidDTO.CategoryID,
		BedTypeID:   freightBidDTO.BedTypeID,
		UseTagIDs:   freightBidDTO.UseTagIDs,
	}
	if freightBidDTO.Pickup != nil {
		freightBidModify.Pickup = &entities.Location{
			Address: freightBidDTO.Pickup.Address,
			Lat:     freightBidDTO.Pickup.Lat,
			Lng:     freightBidDTO.Pickup.Lng,
		}
	}
	if freightBidDTO.Delivery != nil {
		freightBidModify.Delivery = &entities.Location{
			Address: freightBidDTO.Delivery.Address,
			Lat:     freightBidDTO.Delivery.Lat,
			Lng:     freightBidDTO.Delivery.Lng,
		}
	}

	freightBid, err := h.service.UpdateFreightBid(r.Context(), freightBidModify, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, freightbid.ErrFreightBidNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, freightbid.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, freightbid.ErrInvalidFreightBidID),
			errors.Is(err, freightbid.ErrMissingRequiredFields),
			errors.Is(err, freightbid.ErrInvalidLocation),
			errors.Is(err, freightbid.ErrUnknownReference),
			errors.Is(err, freightbid.ErrBidClosed):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromFreightBid(freightBid)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
