package freight_bid_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightbid/internal/dto"
	"freightbid/internal/entities"
	"freightbid/internal/pkg/authctx"
	"freightbid/internal/service/freightbid"
	"freightbid/pkg/logger"
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

	var freightBidDTO dto.FreightBidCreate
	err := json.NewDecoder(r.Body).Decode(&freightBidDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pickup := entities.Location{
		Address: freightBidDTO.Pickup.Address,
		Lat:     freightBidDTO.Pickup.Lat,
		Lng:     freightBidDTO.Pickup.Lng,
	}
	delivery := entities.Location{
		Address: freightBidDTO.Delivery.Address,
		Lat:     freightBidDTO.Delivery.Lat,
		Lng:     freightBidDTO.Delivery.Lng,
	}

	freightBidModify := entities.FreightBidModify{
		CustomerID:  &claims.UserID,
		Pickup:      &pickup,
		Delivery:    &delivery,
		TruckTypeID: &freightBidDTO.TruckTypeID,
	}
	if freightBidDTO.CategoryID != "" {
		freightBidModify.CategoryID = &freightBidDTO.CategoryID
	}
	if freightBidDTO.BedTypeID != "" {
		freightBidModify.BedTypeID = &freightBidDTO.BedTypeID
	}
	if len(freightBidDTO.UseTagIDs) > 0 {
		freightBidModify.UseTagIDs = &freightBidDTO.UseTagIDs
	}

	freightBid, err := h.service.CreateFreightBid(r.Context(), freightBidModify)
	if err != nil {
		switch {
		case errors.Is(err, freightbid.ErrMissingRequiredFields),
			errors.Is(err, freightbid.ErrInvalidLocation),
			errors.Is(err, freightbid.ErrUnknownReference):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromFreightBid(freightBid)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
