package freight_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"freightbid/internal/entities"
	freightbidservice "freightbid/internal/service/freightbid"
	"freightbid/pkg/logger"
	"github.com/IBM/sarama"
)

type statusChangedEvent struct {
	FreightBidID string `json:"freight_bid_id"`
	Status       string `json:"status"`
}

type Handler struct {
	freightEventsService     Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, freightEventsService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		freightEventsService:     freightEventsService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("freight.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("freight.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("freight.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("freight_bid", event.FreightBidID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("freight.status.changed processing")

	status := entities.FreightStatusType(event.Status)

	err = h.freightEventsService.ProcessFreightStatusChange(ctx, event.FreightBidID, status)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("freight.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, freightbidservice.ErrFreightBidNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("freight.status.changed handler freight bid not found")

		case errors.Is(err, freightbidservice.ErrBidClosed):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("freight.status.changed handler freight bid already closed")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("freight.status.changed handler failed to process freight bid")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("freight.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
