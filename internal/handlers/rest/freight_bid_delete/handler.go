package freight_bid_delete

import (
	"errors"
	"net/http"

	"freightbid/internal/pkg/authctx"
	"freightbid/internal/service/freightbid"
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

	err := h.service.DeleteFreightBid(r.Context(), id, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, freightbid.ErrFreightBidNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, freightbid.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, freightbid.ErrInvalidFreightBidID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
