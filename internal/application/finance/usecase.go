// Package finance expõe os painéis financeiros: resumo do mês com filtros e
// o resumo da tela inicial. Os filtros rodam em memória sobre o conjunto já
// carregado do mês — nenhuma mudança de filtro dispara nova consulta.
package finance

import (
	"time"

	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/application/orders"
	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/order"
	"github.com/servusapp/servus-api/internal/domain/repository"
)

// UseCase casos de uso financeiros.
type UseCase struct {
	repo repository.OrderRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.OrderRepository) *UseCase {
	return &UseCase{repo: repo}
}

// MonthSummary carrega as O.S. do mês pedido (intervalo de strings com dia 31
// fixo no teto), aplica os filtros em memória e reduz nos totais do painel.
func (uc *UseCase) MonthSummary(userID string, in dto.FinanceSummaryRequest) (*dto.FinanceSummaryResponse, error) {
	year, month, err := resolveMonth(in.Year, in.Month)
	if err != nil {
		return nil, err
	}
	start, end := order.MonthRange(year, month)
	all, err := uc.repo.ListByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	filter := order.Filter{Search: in.Search, Status: in.Status}
	if in.Status != "" && !order.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Min != "" {
		min, err := order.ParseMoney(in.Min)
		if err != nil {
			return nil, err
		}
		filter.MinTotal = &min
	}
	if in.Max != "" {
		max, err := order.ParseMoney(in.Max)
		if err != nil {
			return nil, err
		}
		filter.MaxTotal = &max
	}

	filtered := filter.Apply(all)
	summary := order.Summarize(filtered)

	out := make([]dto.OrderResponse, 0, len(filtered))
	for _, o := range filtered {
		out = append(out, orders.ToOrderResponse(o))
	}
	return &dto.FinanceSummaryResponse{
		Invoiced: summary.Invoiced,
		Pending:  summary.Pending,
		Count:    summary.Count,
		Orders:   out,
	}, nil
}

// HomeSummary reduz as O.S. do mês nos totais da tela inicial
// (recebido = pagas; a receber = abertas + concluídas).
func (uc *UseCase) HomeSummary(userID string, yearIn, monthIn int) (*dto.HomeSummaryResponse, error) {
	year, month, err := resolveMonth(yearIn, monthIn)
	if err != nil {
		return nil, err
	}
	start, end := order.MonthRange(year, month)
	all, err := uc.repo.ListByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	summary := order.SummarizeHome(all)

	out := make([]dto.OrderResponse, 0, len(all))
	for _, o := range all {
		out = append(out, orders.ToOrderResponse(o))
	}
	return &dto.HomeSummaryResponse{
		Received:  summary.Received,
		ToReceive: summary.ToReceive,
		Orders:    out,
	}, nil
}

// resolveMonth aplica o mês corrente quando ano/mês não vêm na query.
func resolveMonth(year, month int) (int, time.Month, error) {
	now := time.Now()
	if year == 0 && month == 0 {
		return now.Year(), now.Month(), nil
	}
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 || year < 2000 || year > 2200 {
		return 0, 0, domain.ErrInvalidInput
	}
	return year, time.Month(month), nil
}
