package slots

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/dbmetrics"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/psqlbuilder"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

// slotColumns are the columns selected for every SlotRow read
var slotColumns = []string{
	"id",
	"service_key",
	"date",
	"staff_id",
	"staff_name",
	"time_slots",
	"sync_status",
	"last_synced_at",
	"created_at",
	"updated_at",
}

// Repository reads mirrored availability rows from the availability_slots table.
// The table is written by the external sync job; this repository never mutates it.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new slot repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByServiceAndDate returns the successfully synced rows for one service
// key on one date, ordered by staff id
func (r *Repository) ListByServiceAndDate(ctx context.Context, key domain.ServiceKey, date types.DateString) ([]*domain.SlotRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{
			"service_key": key,
			"date":        date,
			"sync_status": domain.SyncStatusSuccess,
		}).
		OrderBy("staff_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlotRows(rows)
}

// ListByServiceAndDateRange returns the successfully synced rows for one
// service key with date in [from, to] inclusive, ordered by date then staff id
func (r *Repository) ListByServiceAndDateRange(ctx context.Context, key domain.ServiceKey, from, to types.DateString) ([]*domain.SlotRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{
			"service_key": key,
			"sync_status": domain.SyncStatusSuccess,
		}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC", "staff_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlotRows(rows)
}

// ListByServiceFromDate returns the successfully synced rows for one service
// key with date in [from, from+horizonDays), ordered by date then staff id
func (r *Repository) ListByServiceFromDate(ctx context.Context, key domain.ServiceKey, from types.DateString, horizonDays int) ([]*domain.SlotRow, error) {
	to, err := from.AddDays(horizonDays)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceFromDate - compute horizon: %v", ErrBuildQuery, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{
			"service_key": key,
			"sync_status": domain.SyncStatusSuccess,
		}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.Lt{"date": to}).
		OrderBy("date ASC", "staff_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceFromDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceFromDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlotRows(rows)
}

// scanSlotRows scans all rows from the result set into SlotRow structs
func (r *Repository) scanSlotRows(rows *sql.Rows) ([]*domain.SlotRow, error) {
	result := make([]*domain.SlotRow, 0)

	for rows.Next() {
		var row domain.SlotRow
		var timeSlots pq.StringArray
		var lastSyncedAt, createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&row.ID,
			&row.ServiceKey,
			&row.Date,
			&row.StaffID,
			&row.StaffName,
			&timeSlots,
			&row.SyncStatus,
			&lastSyncedAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlotRows - scan slot row: %v", ErrScanRow, err)
		}

		row.TimeSlots = timeSlots
		row.LastSyncedAt = lastSyncedAt.Time
		row.CreatedAt = createdAt.Time
		row.UpdatedAt = updatedAt.Time

		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlotRows - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}
