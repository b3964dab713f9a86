package entity

import "time"

// User representa a conta de autenticação de um técnico.
// Contas recém-criadas nascem com EmailVerified = false e não conseguem
// logar até confirmarem o link enviado por email.
type User struct {
	ID            string
	Email         string
	PasswordHash  string // bcrypt, nunca em claro depois de persistir
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
