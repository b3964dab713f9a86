package orders_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/application/orders"
	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
	"github.com/servusapp/servus-api/pkg/logger"
)

const (
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testCustomerID = "00000000-0000-0000-0000-000000000002"
	freeLimit      = 5
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func buildCreateUC(orderRepo *fakeOrderRepo, catalogRepo *fakeCatalogRepo, profileRepo *fakeProfileRepo) *orders.CreateOrderUseCase {
	customerRepo := newFakeCustomerRepo(&entity.Customer{
		ID: testCustomerID, UserID: testUserID, Name: "Maria Silva",
	})
	return orders.NewCreateOrderUseCase(orderRepo, customerRepo, catalogRepo, profileRepo, testLogger(), freeLimit)
}

func avulso(title, qty, price string) dto.OrderItemRequest {
	q, _ := decimal.NewFromString(qty)
	return dto.OrderItemRequest{Title: title, Quantity: q, UnitPrice: price, Type: entity.ItemTypeService}
}

func TestCreate_OrdemAvulsa(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	uc := buildCreateUC(orderRepo, newFakeCatalogRepo(), &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID, Plan: entity.PlanFree}})

	resp, err := uc.Create(testUserID, dto.CreateOrderRequest{
		CustomerID: testCustomerID,
		Items: []dto.OrderItemRequest{
			avulso("Troca de resistência", "1", "120"),
			avulso("Deslocamento", "2", "25,50"),
		},
	})
	require.NoError(t, err)

	// total = 1×120 + 2×25,50
	assert.True(t, decimal.RequireFromString("171").Equal(resp.Total))
	assert.Equal(t, entity.StatusOpen, resp.Status)
	assert.Equal(t, "Maria Silva", resp.CustomerName, "nome do cliente copiado na criação")
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.Date)
	assert.NotEmpty(t, resp.Number)
	require.Len(t, orderRepo.created, 1)
}

// Linha referenciando o catálogo copia título, tipo e preço; quantidade vazia
// vira 1.
func TestCreate_ItemDoCatalogo(t *testing.T) {
	catalogRepo := newFakeCatalogRepo(&entity.CatalogItem{
		ID: "cat-1", UserID: testUserID, Title: "Instalação de chuveiro",
		UnitPrice: decimal.RequireFromString("90"), Type: entity.ItemTypeService,
	})
	uc := buildCreateUC(newFakeOrderRepo(), catalogRepo, &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID}})

	resp, err := uc.Create(testUserID, dto.CreateOrderRequest{
		CustomerID: testCustomerID,
		Items:      []dto.OrderItemRequest{{CatalogItemID: "cat-1"}},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Instalação de chuveiro", resp.Items[0].Title)
	assert.Equal(t, entity.ItemTypeService, resp.Items[0].Type)
	assert.True(t, decimal.NewFromInt(1).Equal(resp.Items[0].Quantity), "quantidade vazia vira 1")
	assert.True(t, decimal.RequireFromString("90").Equal(resp.Total))
}

func TestCreate_ItemDeCatalogoInexistente(t *testing.T) {
	uc := buildCreateUC(newFakeOrderRepo(), newFakeCatalogRepo(), &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID}})

	_, err := uc.Create(testUserID, dto.CreateOrderRequest{
		CustomerID: testCustomerID,
		Items:      []dto.OrderItemRequest{{CatalogItemID: "nao-existe"}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ClienteInexistente(t *testing.T) {
	uc := buildCreateUC(newFakeOrderRepo(), newFakeCatalogRepo(), &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID}})

	_, err := uc.Create(testUserID, dto.CreateOrderRequest{
		CustomerID: "outro-cliente",
		Items:      []dto.OrderItemRequest{avulso("Serviço", "1", "10")},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_EntradaInvalida(t *testing.T) {
	uc := buildCreateUC(newFakeOrderRepo(), newFakeCatalogRepo(), &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID}})

	_, err := uc.Create(testUserID, dto.CreateOrderRequest{CustomerID: "", Items: []dto.OrderItemRequest{avulso("x", "1", "1")}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cliente vazio")

	_, err = uc.Create(testUserID, dto.CreateOrderRequest{CustomerID: testCustomerID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sem itens")

	_, err = uc.Create(testUserID, dto.CreateOrderRequest{
		CustomerID: testCustomerID,
		Items:      []dto.OrderItemRequest{avulso("Serviço", "0", "10")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade zero em linha avulsa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Limite mensal do plano free
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_PlanoFree_QuintaOrdemPassaSextaNao(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderRepo.count = freeLimit - 1 // já existem 4 no mês
	uc := buildCreateUC(orderRepo, newFakeCatalogRepo(), &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID, Plan: entity.PlanFree}})

	req := dto.CreateOrderRequest{
		CustomerID: testCustomerID,
		Items:      []dto.OrderItemRequest{avulso("Serviço", "1", "10")},
	}

	_, err := uc.Create(testUserID, req)
	require.NoError(t, err, "a quinta O.S. do mês ainda cabe no limite")

	_, err = uc.Create(testUserID, req)
	assert.ErrorIs(t, err, domain.ErrPlanLimitReached, "a sexta estoura o limite")
}

func TestCreate_PlanoPro_SemLimite(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderRepo.count = 100
	uc := buildCreateUC(orderRepo, newFakeCatalogRepo(), &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID, Plan: entity.PlanPro}})

	_, err := uc.Create(testUserID, dto.CreateOrderRequest{
		CustomerID: testCustomerID,
		Items:      []dto.OrderItemRequest{avulso("Serviço", "1", "10")},
	})
	assert.NoError(t, err)
}

// Falha na contagem libera a criação (fail open): indisponibilidade do banco
// não pode impedir o técnico de trabalhar.
func TestCreate_FalhaNaContagemLiberaCriacao(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderRepo.countErr = errors.New("banco indisponível")
	uc := buildCreateUC(orderRepo, newFakeCatalogRepo(), &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID, Plan: entity.PlanFree}})

	_, err := uc.Create(testUserID, dto.CreateOrderRequest{
		CustomerID: testCustomerID,
		Items:      []dto.OrderItemRequest{avulso("Serviço", "1", "10")},
	})
	assert.NoError(t, err)
}

func TestCreate_FalhaNoPerfilLiberaCriacao(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderRepo.count = 100
	uc := buildCreateUC(orderRepo, newFakeCatalogRepo(), &fakeProfileRepo{err: errors.New("banco indisponível")})

	_, err := uc.Create(testUserID, dto.CreateOrderRequest{
		CustomerID: testCustomerID,
		Items:      []dto.OrderItemRequest{avulso("Serviço", "1", "10")},
	})
	assert.NoError(t, err)
}

// Perfil ainda não gravado conta como free.
func TestCreate_SemPerfilContaComoFree(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderRepo.count = freeLimit
	uc := buildCreateUC(orderRepo, newFakeCatalogRepo(), &fakeProfileRepo{profile: nil})

	_, err := uc.Create(testUserID, dto.CreateOrderRequest{
		CustomerID: testCustomerID,
		Items:      []dto.OrderItemRequest{avulso("Serviço", "1", "10")},
	})
	assert.ErrorIs(t, err, domain.ErrPlanLimitReached)
}
