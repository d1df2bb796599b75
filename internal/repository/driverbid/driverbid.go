package driverbid

import (
	"context"
	"errors"
	"fmt"

	"freightbid/internal/entities"
	"freightbid/internal/repository"
	"freightbid/internal/service/driverbid"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const driverBidColumns = `id, freight_bid_id, driver_id, truck_id, amount_cents, message, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverBidModify entities.DriverBidModify) (*entities.DriverBid, error) {
	driverBidModifyDB := FromDomainModify(&driverBidModify)

	query := `
		INSERT INTO driver_bids (id, freight_bid_id, driver_id, truck_id, amount_cents, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + driverBidColumns

	var driverBidDB DriverBidDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		driverBidModifyDB.FreightBidID,
		driverBidModifyDB.DriverID,
		driverBidModifyDB.TruckID,
		driverBidModifyDB.AmountCents,
		driverBidModifyDB.Message,
	).Scan(
		&driverBidDB.ID,
		&driverBidDB.FreightBidID,
		&driverBidDB.DriverID,
		&driverBidDB.TruckID,
		&driverBidDB.AmountCents,
		&driverBidDB.Message,
		&driverBidDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, driverbid.ErrFreightBidNotFound
		}
		return nil, fmt.Errorf("unexpected driver bid repository create error: %w", err)
	}

	return ToDomain(&driverBidDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.DriverBid, error) {
	query := `SELECT ` + driverBidColumns + `
		FROM driver_bids
		WHERE id = $1`

	var driverBidDB DriverBidDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&driverBidDB.ID,
			&driverBidDB.FreightBidID,
			&driverBidDB.DriverID,
			&driverBidDB.TruckID,
			&driverBidDB.AmountCents,
			&driverBidDB.Message,
			&driverBidDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driverbid.ErrDriverBidNotFound
		}

		return nil, fmt.Errorf("unexpected driver bid repository getbyid error: %w", err)
	}

	return ToDomain(&driverBidDB), nil
}

// GetByFreightBidID возвращает ставки в порядке подачи.
func (r *Repository) GetByFreightBidID(ctx context.Context, freightBidID string) ([]entities.DriverBid, error) {
	query := `SELECT ` + driverBidColumns + `
		FROM driver_bids
		WHERE freight_bid_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, freightBidID)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver bid repository getbyfreightbidid error: %w", err)
	}
	defer rows.Close()

	driverBidModels := make([]DriverBidDB, 0, 8)
	for rows.Next() {
		var driverBidDB DriverBidDB
		err := rows.Scan(
			&driverBidDB.ID,
			&driverBidDB.FreightBidID,
			&driverBidDB.DriverID,
			&driverBidDB.TruckID,
			&driverBidDB.AmountCents,
			&driverBidDB.Message,
			&driverBidDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver bid repository getbyfreightbidid error: %w", err)
		}
		driverBidModels = append(driverBidModels, driverBidDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver bid repository getbyfreightbidid error: %w", err)
	}

	return ToDomainList(driverBidModels), nil
}

func (r *Repository) CountByFreightBidID(ctx context.Context, freightBidID string) (int64, error) {
	query := `SELECT COUNT(*) FROM driver_bids WHERE freight_bid_id = $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, freightBidID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected driver bid repository countbyfreightbidid error: %w", err)
	}

	return count, nil
}

// GetFreightBidStatus читает статус родительской заявки, чтобы проверка
// "заявка еще открыта" и вставка ставки шли в одной транзакции.
func (r *Repository) GetFreightBidStatus(ctx context.Context, freightBidID string) (entities.FreightStatusType, error) {
	query := `SELECT status FROM freight_bids WHERE id = $1`

	var status string
	err := r.querier.QueryRow(ctx, query, freightBidID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", driverbid.ErrFreightBidNotFound
		}

		return "", fmt.Errorf("unexpected driver bid repository getfreightbidstatus error: %w", err)
	}

	return entities.FreightStatusType(status), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM driver_bids WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return driverbid.ErrBidAssigned
		}
		return fmt.Errorf("unexpected driver bid repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return driverbid.ErrDriverBidNotFound
	}

	return nil
}
