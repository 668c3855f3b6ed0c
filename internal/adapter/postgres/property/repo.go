// Package property implements the Property repository using PostgreSQL.
package property

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

const table = "properties"

var columns = []string{
	"id", "owner_id", "name", "type", "description",
	"street", "city", "state", "zipcode",
	"beds", "baths", "square_feet", "amenities",
	"rate_nightly", "rate_weekly", "rate_monthly",
	"seller_name", "seller_email", "seller_phone",
	"images", "is_featured", "created_at", "updated_at",
}

// searchColumns are matched by the free-text location filter.
var searchColumns = []string{"name", "description", "street", "city", "state", "zipcode"}

// Repo provides property persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new property repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a property and returns the stored row.
func (r *Repo) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	now := time.Now().UTC()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = p.CreatedAt

	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(
			p.ID, p.OwnerID, p.Name, string(p.Type), p.Description,
			p.Location.Street, p.Location.City, p.Location.State, p.Location.Zipcode,
			p.Beds, p.Baths, p.SquareFeet, amenities,
			p.Rates.Nightly, p.Rates.Weekly, p.Rates.Monthly,
			p.SellerInfo.Name, p.SellerInfo.Email, p.SellerInfo.Phone,
			images, p.IsFeatured, p.CreatedAt, p.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanProperty(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "property", p.ID)
	}
	return &created, nil
}

// GetByID returns a property by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	p, err := scanProperty(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "property", id)
	}
	return &p, nil
}

// GetByIDs returns the properties with the given ids, newest first.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Property, error) {
	if len(ids) == 0 {
		return []domain.Property{}, nil
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": ids}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return r.queryMany(ctx, query, args)
}

// Search returns one page of properties matching f plus the total match count.
// Results are ordered newest first.
func (r *Repo) Search(ctx context.Context, f domain.PropertyFilter) (*domain.PropertyPage, error) {
	where := buildWhere(f)

	countQuery, countArgs, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, postgres.MapError(err, "property", "search")
	}

	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items, err := r.queryMany(ctx, query, args)
	if err != nil {
		return nil, err
	}

	return &domain.PropertyPage{Items: items, Total: total}, nil
}

// Delete removes a property. Returns domain.ErrNotFound when no row matched.
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
		return postgres.MapError(err, "property", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetFeatured flags or unflags a listing for the featured carousel.
func (r *Repo) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	query, args, err := postgres.Builder.
		Update(table).
		Set("is_featured", featured).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "property", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) queryMany(ctx context.Context, query string, args []any) ([]domain.Property, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "property", "list")
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Property, error) {
		return scanProperty(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "property", "list")
	}
	return items, nil
}

// buildWhere translates a PropertyFilter into a squirrel predicate.
// The location term matches any of searchColumns case-insensitively.
func buildWhere(f domain.PropertyFilter) sq.And {
	where := sq.And{}

	if term := strings.TrimSpace(f.Location); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		or := sq.Or{}
		for _, c := range searchColumns {
			or = append(or, sq.ILike{c: pattern})
		}
		where = append(where, or)
	}
	if f.Type != nil {
		where = append(where, sq.Eq{"type": string(*f.Type)})
	}
	if f.Featured != nil {
		where = append(where, sq.Eq{"is_featured": *f.Featured})
	}
	if f.OwnerID != nil {
		where = append(where, sq.Eq{"owner_id": *f.OwnerID})
	}

	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanProperty(row pgx.Row) (domain.Property, error) {
	var (
		p   domain.Property
		typ string
	)
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &typ, &p.Description,
		&p.Location.Street, &p.Location.City, &p.Location.State, &p.Location.Zipcode,
		&p.Beds, &p.Baths, &p.SquareFeet, &p.Amenities,
		&p.Rates.Nightly, &p.Rates.Weekly, &p.Rates.Monthly,
		&p.SellerInfo.Name, &p.SellerInfo.Email, &p.SellerInfo.Phone,
		&p.Images, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Property{}, err
	}
	p.Type = domain.PropertyType(typ)
	return p, nil
}
