// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres"
	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "username", "password_hash", "image", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := r.getOne(ctx, sq.Eq{"id": id})
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email. The email is normalized before lookup,
// so callers on every sign-in path reach the same record.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	u, err := r.getOne(ctx, sq.Eq{"email": email})
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// GetByUsername returns a user by exact username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := r.getOne(ctx, sq.Eq{"username": username})
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return u, nil
}

// GetByIDs returns the users with the given ids in no particular order.
// Missing ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", "batch")
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "user", "batch")
	}
	return users, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email or username surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(
			u.ID,
			domain.NormalizeEmail(u.Email),
			u.Username,
			ptrStringToPgText(u.PasswordHash),
			ptrStringToPgText(u.Image),
			u.CreatedAt,
			u.UpdatedAt,
		).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanUser(row)
	if err != nil {
		return nil, mapWriteError(err, u.ID)
	}
	return &created, nil
}

// UpdateFields applies the non-nil fields of upd and bumps updated_at.
// An empty update is a no-op read of the current row.
func (r *Repo) UpdateFields(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error) {
	if upd.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder.
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + returning())

	if upd.Username != nil {
		b = b.Set("username", *upd.Username)
	}
	if upd.Image != nil {
		b = b.Set("image", ptrStringToPgText(upd.Image))
	}
	if upd.PasswordHash != nil {
		b = b.Set("password_hash", ptrStringToPgText(upd.PasswordHash))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	updated, err := scanUser(row)
	if err != nil {
		return nil, mapWriteError(err, id)
	}
	return &updated, nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func returning() string {
	s := columns[0]
	for _, c := range columns[1:] {
		s += ", " + c
	}
	return s
}

// mapWriteError names the colliding field of a unique violation.
func mapWriteError(err error, key any) error {
	switch postgres.ConstraintName(err) {
	case "ux_users_email":
		return fmt.Errorf("user %v: %w", key, &domain.DuplicateError{Field: domain.FieldEmail})
	case "ux_users_username":
		return fmt.Errorf("user %v: %w", key, &domain.DuplicateError{Field: domain.FieldUsername})
	}
	return postgres.MapError(err, "user", key)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u            domain.User
		passwordHash pgtype.Text
		image        pgtype.Text
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &passwordHash, &image, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	u.PasswordHash = pgTextToPtr(passwordHash)
	u.Image = pgTextToPtr(image)
	return u, nil
}

// pgTextToPtr returns a *string (nil when NULL).
func pgTextToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil → NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
