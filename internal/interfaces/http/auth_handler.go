package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/servusapp/servus-api/internal/application/auth"
	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/domain"
)

// AuthHandler trata cadastro, login, verificação de email e trocas de senha.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// VerifyEmail GET /api/auth/verify?token=...
// É o link clicado no email, então a resposta é texto simples.
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).SendString("token ausente")
	}
	if err := h.uc.VerifyEmail(token); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("link inválido ou expirado")
	}
	return c.SendString("Email verificado com sucesso. Você já pode entrar no app.")
}

// ForgotPassword POST /api/auth/forgot-password
// Responde 200 mesmo para email desconhecido, sem revelar contas cadastradas.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.ForgotPassword(c.UserContext(), in.Email); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "se o email estiver cadastrado, o link de redefinição foi enviado"})
}

// ResetPassword POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.ResetPassword(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "senha redefinida com sucesso"})
}

// ChangePassword POST /api/auth/change-password (autenticado)
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.ChangePassword(userID, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "senha alterada com sucesso"})
}
