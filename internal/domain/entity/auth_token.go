package entity

import "time"

// Finalidades de token de conta.
const (
	TokenPurposeVerifyEmail   = "verify_email"
	TokenPurposeResetPassword = "reset_password"
)

// AuthToken é um token de uso único enviado por email (verificação de conta
// ou recuperação de senha). Consumido na primeira utilização.
type AuthToken struct {
	Token     string
	UserID    string
	Purpose   string // TokenPurposeVerifyEmail | TokenPurposeResetPassword
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired indica se o token já passou da validade.
func (t *AuthToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
