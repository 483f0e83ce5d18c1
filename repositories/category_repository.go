package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slime-shop/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, name, slug, is_active, display_order, created_at, updated_at`

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY display_order, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.IsActive,
			&cat.DisplayOrder, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int) (*models.Category, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug))
}

func (r *CategoryRepository) Create(ctx context.Context, cat *models.Category) error {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name, slug, is_active, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		cat.Name, cat.Slug, cat.IsActive, cat.DisplayOrder, now, now,
	).Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt)
	return wrapUniqueViolation(err)
}

func (r *CategoryRepository) Update(ctx context.Context, cat *models.Category) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories SET name=$1, slug=$2, is_active=$3, display_order=$4, updated_at=$5
		WHERE id=$6`,
		cat.Name, cat.Slug, cat.IsActive, cat.DisplayOrder, time.Now(), cat.ID,
	)
	if err != nil {
		return wrapUniqueViolation(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder swaps the category's display_order with its neighbor in the given
// direction ("up" moves toward the front of the list). Returns false when
// the category is already at the edge. The two writes run in one
// transaction, but reordering across the whole list is not atomic between
// concurrent admins; acceptable for a single-admin tool.
func (r *CategoryRepository) Reorder(ctx context.Context, id int, direction string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var order int
	err = tx.QueryRow(ctx, `SELECT display_order FROM categories WHERE id = $1 FOR UPDATE`, id).Scan(&order)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}

	cmp, sort := "<", "DESC"
	if direction == "down" {
		cmp, sort = ">", "ASC"
	}

	var neighborID, neighborOrder int
	err = tx.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, display_order FROM categories
		WHERE (display_order %s $1 OR (display_order = $1 AND id %s $2))
		ORDER BY display_order %s, id %s LIMIT 1 FOR UPDATE`, cmp, cmp, sort, sort),
		order, id).Scan(&neighborID, &neighborOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // already at the edge
	}
	if err != nil {
		return false, err
	}

	now := time.Now()
	if _, err := tx.Exec(ctx,
		`UPDATE categories SET display_order=$1, updated_at=$2 WHERE id=$3`,
		neighborOrder, now, id); err != nil {
		return false, err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE categories SET display_order=$1, updated_at=$2 WHERE id=$3`,
		order, now, neighborID); err != nil {
		return false, err
	}

	return true, tx.Commit(ctx)
}

func (r *CategoryRepository) scanOne(row pgx.Row) (*models.Category, error) {
	var cat models.Category
	err := row.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.IsActive,
		&cat.DisplayOrder, &cat.CreatedAt, &cat.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func wrapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
