package services

import (
	"context"
	"errors"

	"slime-shop/models"
	"slime-shop/repositories"
	"slime-shop/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// CredentialVerifier checks a credential pair and returns the matching
// account. Call sites never see where credentials live, so the static
// lookup can be swapped for a real identity provider without touching them.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*models.AdminUser, error)
}

// DBCredentialVerifier verifies against the admin_users table.
type DBCredentialVerifier struct {
	admins *repositories.AdminRepository
}

func NewDBCredentialVerifier(admins *repositories.AdminRepository) *DBCredentialVerifier {
	return &DBCredentialVerifier{admins: admins}
}

func (v *DBCredentialVerifier) Verify(ctx context.Context, email, password string) (*models.AdminUser, error) {
	user, err := v.admins.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	valid, err := utils.VerifyPassword(user.PasswordHash, password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// StaticCredentialVerifier holds a fixed email-to-hash map. Used in tests
// and as a stopgap deployment without a database-backed admin account.
type StaticCredentialVerifier struct {
	users map[string]models.AdminUser
}

func NewStaticCredentialVerifier(users map[string]models.AdminUser) *StaticCredentialVerifier {
	return &StaticCredentialVerifier{users: users}
}

func (v *StaticCredentialVerifier) Verify(_ context.Context, email, password string) (*models.AdminUser, error) {
	user, ok := v.users[email]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	valid, err := utils.VerifyPassword(user.PasswordHash, password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

type AuthService struct {
	verifier CredentialVerifier
}

func NewAuthService(verifier CredentialVerifier) *AuthService {
	return &AuthService{verifier: verifier}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.verifier.Verify(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}
