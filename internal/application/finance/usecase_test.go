package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/application/finance"
	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

// stubOrderRepo devolve sempre o mesmo conjunto e grava o intervalo pedido.
// Só os métodos de leitura por intervalo são usados pelos painéis.
type stubOrderRepo struct {
	orders     []*entity.WorkOrder
	start, end string
}

func (r *stubOrderRepo) ListByDateRange(userID, start, end string) ([]*entity.WorkOrder, error) {
	r.start, r.end = start, end
	return r.orders, nil
}

func (r *stubOrderRepo) Create(*entity.WorkOrder) error                        { return nil }
func (r *stubOrderRepo) GetByID(string, string) (*entity.WorkOrder, error)     { return nil, nil }
func (r *stubOrderRepo) ListByUser(string) ([]*entity.WorkOrder, error)        { return nil, nil }
func (r *stubOrderRepo) CountByDateRange(string, string, string) (int, error)  { return 0, nil }
func (r *stubOrderRepo) UpdateStatus(string, string, string) error             { return nil }
func (r *stubOrderRepo) SetSignature(string, string, string, string) error     { return nil }
func (r *stubOrderRepo) AppendPhoto(string, string, entity.OrderPhoto) error   { return nil }
func (r *stubOrderRepo) SetPhotos(string, string, []entity.OrderPhoto) error   { return nil }
func (r *stubOrderRepo) Delete(string, string) error                           { return nil }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func monthOrders() []*entity.WorkOrder {
	return []*entity.WorkOrder{
		{ID: "o1", CustomerName: "Maria Silva", Total: dec("100"), Status: entity.StatusOpen, Date: "2026-08-05"},
		{ID: "o2", CustomerName: "João Souza", Total: dec("200"), Status: entity.StatusCompleted, Date: "2026-08-12"},
		{ID: "o3", CustomerName: "Padaria do Zé", Total: dec("300"), Status: entity.StatusPaid, Date: "2026-08-20"},
	}
}

func TestMonthSummary_SemFiltros(t *testing.T) {
	repo := &stubOrderRepo{orders: monthOrders()}
	uc := finance.NewUseCase(repo)

	resp, err := uc.MonthSummary(testUserID, dto.FinanceSummaryRequest{Year: 2026, Month: 8})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", repo.start)
	assert.Equal(t, "2026-08-31", repo.end, "teto fixo no dia 31")
	assert.True(t, dec("600").Equal(resp.Invoiced))
	assert.True(t, dec("300").Equal(resp.Pending))
	assert.Equal(t, 3, resp.Count)
	assert.Len(t, resp.Orders, 3)
}

func TestMonthSummary_FiltrosEmMemoria(t *testing.T) {
	repo := &stubOrderRepo{orders: monthOrders()}
	uc := finance.NewUseCase(repo)

	resp, err := uc.MonthSummary(testUserID, dto.FinanceSummaryRequest{
		Year: 2026, Month: 8,
		Min: "150,00", Max: "250",
	})
	require.NoError(t, err)

	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "João Souza", resp.Orders[0].CustomerName)
	assert.True(t, dec("200").Equal(resp.Invoiced), "totais refletem só o conjunto filtrado")
	assert.Equal(t, 1, resp.Count)
}

func TestMonthSummary_StatusDesconhecido(t *testing.T) {
	uc := finance.NewUseCase(&stubOrderRepo{orders: monthOrders()})

	_, err := uc.MonthSummary(testUserID, dto.FinanceSummaryRequest{Year: 2026, Month: 8, Status: "cancelled"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMonthSummary_MesInvalido(t *testing.T) {
	uc := finance.NewUseCase(&stubOrderRepo{})

	_, err := uc.MonthSummary(testUserID, dto.FinanceSummaryRequest{Year: 2026, Month: 13})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHomeSummary(t *testing.T) {
	repo := &stubOrderRepo{orders: monthOrders()}
	uc := finance.NewUseCase(repo)

	resp, err := uc.HomeSummary(testUserID, 2026, 8)
	require.NoError(t, err)

	assert.True(t, dec("300").Equal(resp.Received), "recebido = pagas")
	assert.True(t, dec("300").Equal(resp.ToReceive), "a receber = abertas + concluídas")
	assert.Len(t, resp.Orders, 3)
}

// Sem ano/mês na query o painel usa o mês corrente.
func TestHomeSummary_MesCorrentePorPadrao(t *testing.T) {
	repo := &stubOrderRepo{}
	uc := finance.NewUseCase(repo)

	_, err := uc.HomeSummary(testUserID, 0, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, repo.start)
	assert.Regexp(t, `^\d{4}-\d{2}-01$`, repo.start)
	assert.Regexp(t, `^\d{4}-\d{2}-31$`, repo.end)
}
