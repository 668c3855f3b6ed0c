// Package bookmark implements the Bookmark repository using PostgreSQL.
package bookmark

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres"
)

const table = "bookmarks"

// Repo provides bookmark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bookmark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Add bookmarks the property for the user. Adding an existing bookmark is a no-op.
func (r *Repo) Add(ctx context.Context, userID, propertyID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id", "property_id", "created_at").
		Values(userID, propertyID, time.Now().UTC()).
		Suffix("ON CONFLICT (user_id, property_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "bookmark", propertyID)
	}
	return nil
}

// Remove deletes the bookmark and reports whether one existed.
func (r *Repo) Remove(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"user_id": userID, "property_id": propertyID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "bookmark", propertyID)
	}
	return tag.RowsAffected() > 0, nil
}

// Exists reports whether the user has bookmarked the property.
func (r *Repo) Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder.
		Select("1").
		From(table).
		Where(sq.Eq{"user_id": userID, "property_id": propertyID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "bookmark", propertyID)
	}
	return exists, nil
}

// ListPropertyIDs returns the ids of the user's bookmarked properties, most
// recently bookmarked first.
func (r *Repo) ListPropertyIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder.
		Select("property_id").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "bookmark", userID)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "bookmark", userID)
	}
	return ids, nil
}

// DeleteByProperty removes every bookmark of the property.
func (r *Repo) DeleteByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"property_id": propertyID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "bookmark", propertyID)
	}
	return tag.RowsAffected(), nil
}
