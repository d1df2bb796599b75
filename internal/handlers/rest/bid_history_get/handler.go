package bid_history_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightbid/internal/dto"
	"freightbid/internal/pkg/authctx"
	"freightbid/internal/service/query"
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

	freightBids, err := h.service.GetBidHistory(r.Context(), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, query.ErrInvalidCustomerID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.FreightBid, len(freightBids))
	for i := range freightBids {
		response[i] = dto.FromFreightBid(&freightBids[i])
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
