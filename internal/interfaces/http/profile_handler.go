package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/application/usecase"
)

// ProfileHandler trata o perfil de negócio e o link de assinatura (protegido).
type ProfileHandler struct {
	uc              *usecase.ProfileUseCase
	supportWhatsApp string
}

// NewProfileHandler constrói o handler.
func NewProfileHandler(uc *usecase.ProfileUseCase, supportWhatsApp string) *ProfileHandler {
	return &ProfileHandler{uc: uc, supportWhatsApp: supportWhatsApp}
}

// Get GET /api/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.uc.Get(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT /api/profile
// Merge parcial: campos ausentes não tocam no valor salvo.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Update(userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UploadLogo POST /api/profile/logo (multipart: logo)
func (h *ProfileHandler) UploadLogo(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	file, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "campo multipart 'logo' obrigatório"})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "arquivo ilegível"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "arquivo ilegível"})
	}
	resp, err := h.uc.UploadLogo(c.UserContext(), userID, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SubscriptionLink GET /api/subscription/link
func (h *ProfileHandler) SubscriptionLink(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.uc.SubscriptionLink(h.supportWhatsApp)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
