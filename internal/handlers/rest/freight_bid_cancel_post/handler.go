package freight_bid_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightbid/internal/dto"
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

	freightBid, err := h.service.CancelFreightBid(r.Context(), id, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, freightbid.ErrFreightBidNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, freightbid.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, freightbid.ErrInvalidFreightBidID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, freightbid.ErrBidClosed):
			w.WriteHeader(http.StatusConflict)
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
