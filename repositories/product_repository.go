package repositories

import (
	"context"
	"errors"
	"time"

	"slime-shop/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, name, description, price_cents, images, category_slug,
	stock_quantity, is_active, created_at, updated_at`

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListActive returns active products, newest first, optionally narrowed to
// one category slug. The storefront never sees inactive products.
func (r *ProductRepository) ListActive(ctx context.Context, categorySlug string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = true`
	args := []interface{}{}

	if categorySlug != "" {
		query += ` AND category_slug = $1`
		args = append(args, categorySlug)
	}
	query += ` ORDER BY created_at DESC LIMIT 100`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (r *ProductRepository) FindActiveByID(ctx context.Context, id int) (*models.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND is_active = true`, id)
	return scanProduct(row)
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	now := time.Now()
	return r.db.QueryRow(ctx, `
		INSERT INTO products (name, description, price_cents, images, category_slug,
			stock_quantity, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		p.Name, p.Description, p.PriceCents, p.Images, p.CategorySlug,
		p.StockQuantity, p.IsActive, now, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET name=$1, description=$2, price_cents=$3, images=$4,
			category_slug=$5, stock_quantity=$6, is_active=$7, updated_at=$8
		WHERE id=$9`,
		p.Name, p.Description, p.PriceCents, p.Images, p.CategorySlug,
		p.StockQuantity, p.IsActive, time.Now(), p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Images,
		&p.CategorySlug, &p.StockQuantity, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Images,
			&p.CategorySlug, &p.StockQuantity, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if p.Images == nil {
			p.Images = []string{}
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
