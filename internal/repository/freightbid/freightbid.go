package freightbid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freightbid/internal/entities"
	"freightbid/internal/service/freightbid"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const freightBidColumns = `id, customer_id,
		pickup_address, pickup_lat, pickup_lng,
		delivery_address, delivery_lat, delivery_lng,
		truck_type_id, category_id, bed_type_id, use_tag_ids,
		status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, freightBidModify entities.FreightBidModify) (*entities.FreightBid, error) {
	freightBidModifyDB := FromDomainModify(&freightBidModify)

	query := `
		INSERT INTO freight_bids (id, customer_id,
			pickup_address, pickup_lat, pickup_lng,
			delivery_address, delivery_lat, delivery_lng,
			truck_type_id, category_id, bed_type_id, use_tag_ids, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + freightBidColumns

	var useTagIDs []string
	if freightBidModifyDB.UseTagIDs != nil {
		useTagIDs = *freightBidModifyDB.UseTagIDs
	}

	status := entities.FreightOpen.String()
	if freightBidModifyDB.Status != nil {
		status = *freightBidModifyDB.Status
	}

	var freightBidDB FreightBidDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		freightBidModifyDB.CustomerID,
		freightBidModifyDB.PickupAddress,
		freightBidModifyDB.PickupLat,
		freightBidModifyDB.PickupLng,
		freightBidModifyDB.DeliveryAddress,
		freightBidModifyDB.DeliveryLat,
		freightBidModifyDB.DeliveryLng,
		freightBidModifyDB.TruckTypeID,
		freightBidModifyDB.CategoryID,
		freightBidModifyDB.BedTypeID,
		useTagIDs,
		status,
	).Scan(
		&freightBidDB.ID,
		&freightBidDB.CustomerID,
		&freightBidDB.PickupAddress,
		&freightBidDB.PickupLat,
		&freightBidDB.PickupLng,
		&freightBidDB.DeliveryAddress,
		&freightBidDB.DeliveryLat,
		&freightBidDB.DeliveryLng,
		&freightBidDB.TruckTypeID,
		&freightBidDB.CategoryID,
		&freightBidDB.BedTypeID,
		&freightBidDB.UseTagIDs,
		&freightBidDB.Status,
		&freightBidDB.CreatedAt,
		&freightBidDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected freight bid repository create error: %w", err)
	}

	return ToDomain(&freightBidDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.FreightBid, error) {
	query := `SELECT ` + freightBidColumns + `
		FROM freight_bids
		WHERE id = $1`

	var freightBidDB FreightBidDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&freightBidDB.ID,
			&freightBidDB.CustomerID,
			&freightBidDB.PickupAddress,
			&freightBidDB.PickupLat,
			&freightBidDB.PickupLng,
			&freightBidDB.DeliveryAddress,
			&freightBidDB.DeliveryLat,
			&freightBidDB.DeliveryLng,
			&freightBidDB.TruckTypeID,
			&freightBidDB.CategoryID,
			&freightBidDB.BedTypeID,
			&freightBidDB.UseTagIDs,
			&freightBidDB.Status,
			&freightBidDB.CreatedAt,
			&freightBidDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, freightbid.ErrFreightBidNotFound
		}

		return nil, fmt.Errorf("unexpected freight bid repository getbyid error: %w", err)
	}

	return ToDomain(&freightBidDB), nil
}

func (r *Repository) GetByCustomerID(ctx context.Context, customerID string) ([]entities.FreightBid, error) {
	query := `SELECT ` + freightBidColumns + `
		FROM freight_bids
		WHERE customer_id = $1
		ORDER BY created_at DESC, id`

	rows, err := r.querier.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected freight bid repository getbycustomerid error: %w", err)
	}
	defer rows.Close()

	freightBidModels := make([]FreightBidDB, 0, 8)
	for rows.Next() {
		var freightBidDB FreightBidDB
		err := rows.Scan(
			&freightBidDB.ID,
			&freightBidDB.CustomerID,
			&freightBidDB.PickupAddress,
			&freightBidDB.PickupLat,
			&freightBidDB.PickupLng,
			&freightBidDB.DeliveryAddress,
			&freightBidDB.DeliveryLat,
			&freightBidDB.DeliveryLng,
			&freightBidDB.TruckTypeID,
			&freightBidDB.CategoryID,
			&freightBidDB.BedTypeID,
			&freightBidDB.UseTagIDs,
			&freightBidDB.Status,
			&freightBidDB.CreatedAt,
			&freightBidDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected freight bid repository getbycustomerid error: %w", err)
		}
		freightBidModels = append(freightBidModels, freightBidDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected freight bid repository getbycustomerid error: %w", err)
	}

	return ToDomainList(freightBidModels), nil
}

func (r *Repository) Update(ctx context.Context, freightBidModify entities.FreightBidModify) (*entities.FreightBid, error) {
	freightBidModifyDB := FromDomainModify(&freightBidModify)

	builder := qb.
		Update("freight_bids")

	// опциональные поля
	if freightBidModifyDB.PickupAddress != nil {
		builder = builder.
			Set("pickup_address", freightBidModifyDB.PickupAddress).
			Set("pickup_lat", freightBidModifyDB.PickupLat).
			Set("pickup_lng", freightBidModifyDB.PickupLng)
	}
	if freightBidModifyDB.DeliveryAddress != nil {
		builder = builder.
			Set("delivery_address", freightBidModifyDB.DeliveryAddress).
			Set("delivery_lat", freightBidModifyDB.DeliveryLat).
			Set("delivery_lng", freightBidModifyDB.DeliveryLng)
	}
	if freightBidModifyDB.TruckTypeID != nil {
		builder = builder.Set("truck_type_id", freightBidModifyDB.TruckTypeID)
	}
	if freightBidModifyDB.CategoryID != nil {
		builder = builder.Set("category_id", freightBidModifyDB.CategoryID)
	}
	if freightBidModifyDB.BedTypeID != nil {
		builder = builder.Set("bed_type_id", freightBidModifyDB.BedTypeID)
	}
	if freightBidModifyDB.UseTagIDs != nil {
		builder = builder.Set("use_tag_ids", *freightBidModifyDB.UseTagIDs)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": freightBidModifyDB.ID}).
		Suffix("RETURNING " + freightBidColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected freight bid repository update error: %w", err)
	}

	var freightBidDB FreightBidDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&freightBidDB.ID,
			&freightBidDB.CustomerID,
			&freightBidDB.PickupAddress,
			&freightBidDB.PickupLat,
			&freightBidDB.PickupLng,
			&freightBidDB.DeliveryAddress,
			&freightBidDB.DeliveryLat,
			&freightBidDB.DeliveryLng,
			&freightBidDB.TruckTypeID,
			&freightBidDB.CategoryID,
			&freightBidDB.BedTypeID,
			&freightBidDB.UseTagIDs,
			&freightBidDB.Status,
			&freightBidDB.CreatedAt,
			&freightBidDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, freightbid.ErrFreightBidNotFound
		}

		return nil, fmt.Errorf("unexpected freight bid repository update error: %w", err)
	}

	return ToDomain(&freightBidDB), nil
}

// UpdateStatusWhereCurrent переводит заявку в статус to только если текущий
// статус входит в from. Возвращает число обновленных строк: 0 означает, что
// заявка не существует либо уже сменила статус.
func (r *Repository) UpdateStatusWhereCurrent(
	ctx context.Context,
	id string,
	to entities.FreightStatusType,
	from ...entities.FreightStatusType,
) (int64, error) {
	statuses := make([]string, 0, len(from))
	for _, s := range from {
		statuses = append(statuses, s.String())
	}

	builder := qb.
		Update("freight_bids").
		Set("status", to.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": statuses})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected freight bid repository updatestatus error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected freight bid repository updatestatus error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM freight_bids WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected freight bid repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return freightbid.ErrFreightBidNotFound
	}

	return nil
}

// CancelOpenCreatedBefore закрывает зависшие открытые заявки, созданные до cutoff.
func (r *Repository) CancelOpenCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE freight_bids
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND created_at < $3
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		entities.FreightCancelled.String(),
		entities.FreightOpen.String(),
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected freight bid repository cancelopencreatedbefore error: %w", err)
	}

	return result.RowsAffected(), nil
}
