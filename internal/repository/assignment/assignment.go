package assignment

import (
	"context"
	"errors"
	"fmt"

	"freightbid/internal/entities"
	"freightbid/internal/repository"
	"freightbid/internal/service/matching"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет запись назначения. Уникальный индекс по freight_bid_id
// гарантирует не более одного назначения на заявку даже при гонке.
func (r *Repository) Create(ctx context.Context, freightBidID, driverBidID string) (*entities.Assignment, error) {
	query := `
		INSERT INTO assignments (freight_bid_id, driver_bid_id)
		VALUES ($1, $2)
		RETURNING freight_bid_id, driver_bid_id, assigned_at
	`

	var assignmentDB AssignmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		freightBidID,
		driverBidID,
	).Scan(
		&assignmentDB.FreightBidID,
		&assignmentDB.DriverBidID,
		&assignmentDB.AssignedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, matching.ErrAlreadyAssigned
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, matching.ErrDriverBidNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(&assignmentDB), nil
}

func (r *Repository) GetByFreightBidID(ctx context.Context, freightBidID string) (*entities.Assignment, error) {
	query := `SELECT freight_bid_id, driver_bid_id, assigned_at
		FROM assignments
		WHERE freight_bid_id = $1`

	var assignmentDB AssignmentDB
	err := r.querier.QueryRow(ctx, query, freightBidID).
		Scan(
			&assignmentDB.FreightBidID,
			&assignmentDB.DriverBidID,
			&assignmentDB.AssignedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, matching.ErrAssignmentNotFound
		}

		return nil, fmt.Errorf("unexpected assignment repository getbyfreightbidid error: %w", err)
	}

	return ToDomain(&assignmentDB), nil
}
