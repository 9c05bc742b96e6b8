package itemrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvbakhanovich/shareit/internal/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id int64) (*Request, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*Request, error)
	// ListOthers returns requests made by anyone but requesterID, newest first.
	ListOthers(ctx context.Context, requesterID int64, page pagination.OffsetPage) ([]*Request, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectRequests() squirrel.SelectBuilder {
	return psql.Select("id", "requester_id", "description", "created_at").
		From("public.requests")
}

func (r *pgxRepository) Create(ctx context.Context, req *Request) error {
	query, args, err := psql.Insert("public.requests").
		Columns("requester_id", "description").
		Values(req.RequesterID, req.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create request query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&req.ID, &req.Created); err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Request, error) {
	query, args, err := selectRequests().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get request query failed: %w", err)
	}

	var req Request
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&req.ID, &req.RequesterID, &req.Description, &req.Created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	return &req, nil
}

func (r *pgxRepository) ListByRequester(ctx context.Context, requesterID int64) ([]*Request, error) {
	return r.list(ctx, selectRequests().
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("created_at DESC"))
}

func (r *pgxRepository) ListOthers(ctx context.Context, requesterID int64, page pagination.OffsetPage) ([]*Request, error) {
	return r.list(ctx, selectRequests().
		Where(squirrel.NotEq{"requester_id": requesterID}).
		OrderBy("created_at DESC").
		Limit(uint64(page.Size())).
		Offset(uint64(page.Offset())))
}

func (r *pgxRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*Request, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests failed: %w", err)
	}
	defer rows.Close()

	var result []*Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.RequesterID, &req.Description, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request failed: %w", err)
		}
		result = append(result, &req)
	}
	return result, rows.Err()
}
