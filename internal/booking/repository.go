package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvbakhanovich/shareit/internal/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, q Query, page pagination.OffsetPage) ([]*Booking, error)

	// UpdateStatus moves a booking from one status to another and fails with
	// ErrStatusConflict if the booking is no longer in the from status.
	UpdateStatus(ctx context.Context, id int64, from, to Status) error

	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*Booking, error)
	ListByItemAndBooker(ctx context.Context, itemID, bookerID int64) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectBookings() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.item_id", "i.name", "i.owner_id", "b.booker_id",
		"b.start_time", "b.end_time", "b.status", "b.created_at",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id")
}

// stateFilter returns the predicate for a listing state, or nil for ALL.
func stateFilter(state State, now time.Time) squirrel.Sqlizer {
	switch state {
	case StateCurrent:
		return squirrel.And{
			squirrel.LtOrEq{"b.start_time": now},
			squirrel.GtOrEq{"b.end_time": now},
		}
	case StatePast:
		return squirrel.Lt{"b.end_time": now}
	case StateFuture:
		return squirrel.Gt{"b.start_time": now}
	case StateWaiting:
		return squirrel.Eq{"b.status": string(StatusWaiting)}
	case StateRejected:
		return squirrel.Eq{"b.status": string(StatusRejected)}
	default:
		return nil
	}
}

func buildListQuery(q Query, page pagination.OffsetPage) (string, []any, error) {
	sb := selectBookings()

	switch q.Role {
	case RoleOwner:
		sb = sb.Where(squirrel.Eq{"i.owner_id": q.UserID})
	default:
		sb = sb.Where(squirrel.Eq{"b.booker_id": q.UserID})
	}

	if pred := stateFilter(q.State, q.Now); pred != nil {
		sb = sb.Where(pred)
	}

	return sb.
		OrderBy("b.start_time DESC", "b.id DESC").
		Limit(uint64(page.Size())).
		Offset(uint64(page.Offset())).
		ToSql()
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	query, args, err := psql.Insert("public.bookings").
		Columns("item_id", "booker_id", "start_time", "end_time", "status").
		Values(b.ItemID, b.BookerID, b.Start, b.End, string(b.Status)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query, args, err := selectBookings().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, q Query, page pagination.OffsetPage) ([]*Booking, error) {
	query, args, err := buildListQuery(q, page)
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}
	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, from, to Status) error {
	query, args, err := buildUpdateStatusQuery(id, from, to)
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrStatusConflict
	}
	return nil
}

// buildUpdateStatusQuery only matches a booking still in from, so of two
// concurrent transitions at most one affects a row.
func buildUpdateStatusQuery(id int64, from, to Status) (string, []any, error) {
	return psql.Update("public.bookings").
		Set("status", string(to)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(from)}).
		ToSql()
}

func (r *pgxRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*Booking, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.item_id": itemIDs}).
		OrderBy("b.start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings by item query failed: %w", err)
	}
	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) ListByItemAndBooker(ctx context.Context, itemID, bookerID int64) ([]*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.item_id": itemID, "b.booker_id": bookerID}).
		OrderBy("b.start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings by booker query failed: %w", err)
	}
	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) queryBookings(ctx context.Context, query string, args []any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b      Booking
		status string
	)
	if err := row.Scan(
		&b.ID, &b.ItemID, &b.ItemName, &b.ItemOwnerID, &b.BookerID,
		&b.Start, &b.End, &status, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	b.Status = Status(status)
	return &b, nil
}
