package repository

import "github.com/servusapp/servus-api/internal/domain/entity"

// UserRepository define o porto de persistência das contas de autenticação.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	MarkEmailVerified(id string) error
	UpdatePassword(id, passwordHash string) error
}

// AuthTokenRepository define o porto dos tokens de verificação/reset.
type AuthTokenRepository interface {
	Create(token *entity.AuthToken) error
	Get(token string) (*entity.AuthToken, error)
	Delete(token string) error
}
