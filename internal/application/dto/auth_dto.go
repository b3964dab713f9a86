package dto

import "time"

// RegisterRequest body de POST /api/auth/register.
// O logo é opcional e vai em base64; se o upload falhar, o cadastro aborta
// inteiro em vez de salvar um perfil pela metade.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	BusinessName    string `json:"business_name"`
	CNPJ            string `json:"cnpj,omitempty"`
	Phone           string `json:"phone,omitempty"`
	LogoBase64      string `json:"logo_base64,omitempty"`
}

// RegisterResponse resposta do cadastro: a conta nasce não verificada.
type RegisterResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse conta em respostas (nunca inclui o hash de senha).
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// ForgotPasswordRequest body de POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest body de POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ChangePasswordRequest body de POST /api/auth/change-password (autenticado).
// A senha atual é exigida de novo antes da troca (reautenticação).
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
