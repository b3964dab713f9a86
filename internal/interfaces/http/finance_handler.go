package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/application/finance"
)

// FinanceHandler trata os painéis financeiros (protegido).
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler constrói o handler.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// MonthSummary GET /api/finance/summary?year=&month=&search=&status=&min=&max=
func (h *FinanceHandler) MonthSummary(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.FinanceSummaryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	resp, err := h.uc.MonthSummary(userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// HomeSummary GET /api/finance/home?year=&month=
func (h *FinanceHandler) HomeSummary(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	resp, err := h.uc.HomeSummary(userID, year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
