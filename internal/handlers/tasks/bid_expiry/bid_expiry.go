package bid_expiry

import (
	"context"
	"time"

	"freightbid/pkg/logger"
)

type Service interface {
	ExpireOpenBids(ctx context.Context, maxAge time.Duration) (int64, error)
}

type BidExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	maxAge   time.Duration
}

func NewBidExpiry(log logger.Logger, service Service, interval, maxAge time.Duration) *BidExpiry {
	return &BidExpiry{
		log:      log,
		service:  service,
		interval: interval,
		maxAge:   maxAge,
	}
}

func (b *BidExpiry) TTL() time.Duration {
	return b.interval
}

func (b *BidExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	rowsAffected, err := b.service.ExpireOpenBids(ctxWithTimeout, b.maxAge)

	if rowsAffected > 0 {
		b.log.With(
			logger.NewField("expired_bids", rowsAffected),
		).Info("bid expiry")
	}

	return err
}

func (b *BidExpiry) Info() string {
	return "bid expiry"
}
