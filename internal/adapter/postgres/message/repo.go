// Package message implements the Message repository using PostgreSQL.
package message

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres"
	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

const table = "messages"

var columns = []string{
	"id", "sender_id", "recipient_id", "property_id",
	"name", "email", "phone", "body", "read", "created_at",
}

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a new message.
func (r *Repo) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(m.ID, m.SenderID, m.RecipientID, m.PropertyID,
			m.Name, m.Email, m.Phone, m.Body, m.Read, m.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanMessage(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "message", m.ID)
	}
	return &created, nil
}

// GetByID returns a message by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	m, err := scanMessage(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "message", id)
	}
	return &m, nil
}

// ListByRecipient returns the inbox of recipientID: unread first, then newest first.
func (r *Repo) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Message, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"recipient_id": recipientID}).
		OrderBy("read ASC", "created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "message", recipientID)
	}

	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Message, error) {
		return scanMessage(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "message", recipientID)
	}
	return msgs, nil
}

// SetRead updates the read flag and returns the updated message.
func (r *Repo) SetRead(ctx context.Context, id uuid.UUID, read bool) (*domain.Message, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("read", read).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	m, err := scanMessage(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "message", id)
	}
	return &m, nil
}

// CountUnread returns the number of unread messages addressed to recipientID.
func (r *Repo) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(sq.Eq{"recipient_id": recipientID, "read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "message", recipientID)
	}
	return n, nil
}

// Delete removes a message. Returns domain.ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "message", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByProperty removes every message about the property.
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
		return 0, postgres.MapError(err, "message", propertyID)
	}
	return tag.RowsAffected(), nil
}

// DeleteReadBefore purges read messages created before the cutoff.
func (r *Repo) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"read": true}).
		Where(sq.Lt{"created_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete read messages: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanMessage(row pgx.Row) (domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.PropertyID,
		&m.Name, &m.Email, &m.Phone, &m.Body, &m.Read, &m.CreatedAt)
	return m, err
}
