package driver_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightbid/internal/dto"
	"freightbid/internal/pkg/authctx"
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
	claims, ok := authctx.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	freightBidID := mux.Vars(r)["id"]

	var assignDTO dto.AssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignDriver(r.Context(), freightBidID, assignDTO.DriverBidID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrFreightBidNotFound),
			errors.Is(err, matching.ErrDriverBidNotFound),
			errors.Is(err, matching.ErrBidMismatch):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, matching.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, matching.ErrInvalidFreightBidID),
			errors.Is(err, matching.ErrInvalidDriverBidID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, matching.ErrAlreadyAssigned),
			errors.Is(err, matching.ErrBidClosed):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Assignment{
		FreightBidID: assignment.FreightBidID,
		DriverBidID:  assignment.DriverBidID,
		AssignedAt:   assignment.AssignedAt,
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
