package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
	"github.com/servusapp/servus-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação de UserRepository.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste a conta. Email duplicado vira domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, email_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.EmailVerified, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtém a conta por ID; nil quando não existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getBy(`id = $1`, id)
}

// GetByEmail obtém a conta pelo email (case-insensitive); nil quando não existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getBy(`lower(email) = lower($1)`, email)
}

func (r *UserRepo) getBy(where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, email_verified, created_at, updated_at
		FROM users WHERE ` + where
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.EmailVerified, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// MarkEmailVerified marca a conta como verificada.
func (r *UserRepo) MarkEmailVerified(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET email_verified = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	return nil
}

// UpdatePassword troca o hash da senha.
func (r *UserRepo) UpdatePassword(id, passwordHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

var _ repository.AuthTokenRepository = (*AuthTokenRepo)(nil)

// AuthTokenRepo implementação de AuthTokenRepository.
type AuthTokenRepo struct {
	q Querier
}

// NewAuthTokenRepository constrói o adaptador.
func NewAuthTokenRepository(q Querier) *AuthTokenRepo {
	return &AuthTokenRepo{q: q}
}

// Create persiste um token de verificação/reset.
func (r *AuthTokenRepo) Create(token *entity.AuthToken) error {
	query := `
		INSERT INTO auth_tokens (token, user_id, purpose, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		token.Token, token.UserID, token.Purpose, token.ExpiresAt, token.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert auth token: %w", err)
	}
	return nil
}

// Get obtém um token; nil quando não existe (ou já foi consumido).
func (r *AuthTokenRepo) Get(token string) (*entity.AuthToken, error) {
	query := `SELECT token, user_id, purpose, expires_at, created_at FROM auth_tokens WHERE token = $1`
	var t entity.AuthToken
	err := r.q.QueryRow(context.Background(), query, token).Scan(
		&t.Token, &t.UserID, &t.Purpose, &t.ExpiresAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get auth token: %w", err)
	}
	return &t, nil
}

// Delete consome o token (uso único).
func (r *AuthTokenRepo) Delete(token string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM auth_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete auth token: %w", err)
	}
	return nil
}
