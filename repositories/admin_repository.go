package repositories

import (
	"context"
	"errors"
	"time"

	"slime-shop/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var u models.AdminUser
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, created_at
		FROM admin_users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// EnsureSeed creates the initial admin account when none exists for the
// given email. Called at startup with credentials from the environment.
func (r *AdminRepository) EnsureSeed(ctx context.Context, email, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admin_users (email, password_hash, role, created_at)
		VALUES ($1, $2, 'admin', $3)
		ON CONFLICT (email) DO NOTHING`,
		email, passwordHash, time.Now())
	return err
}
