package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
	"github.com/servusapp/servus-api/internal/domain/order"
	"github.com/servusapp/servus-api/internal/domain/repository"
	"github.com/servusapp/servus-api/pkg/logger"
)

// CreateOrderUseCase cria uma O.S. aplicando a checagem de limite do plano.
type CreateOrderUseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	catalogRepo  repository.CatalogRepository
	profileRepo  repository.ProfileRepository
	log          *logger.Logger
	freeLimit    int
}

// NewCreateOrderUseCase constrói o caso de uso.
func NewCreateOrderUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	catalogRepo repository.CatalogRepository,
	profileRepo repository.ProfileRepository,
	log *logger.Logger,
	freeLimit int,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		catalogRepo:  catalogRepo,
		profileRepo:  profileRepo,
		log:          log,
		freeLimit:    freeLimit,
	}
}

// Create valida o cliente, monta as linhas (cópias do catálogo ou avulsas),
// calcula o total e persiste a O.S. com status open e data de hoje.
func (uc *CreateOrderUseCase) Create(userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !uc.allowedByPlan(userID) {
		return nil, domain.ErrPlanLimitReached
	}

	customer, err := uc.customerRepo.GetByID(userID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	for i := range in.Items {
		item, err := uc.buildItem(userID, &in.Items[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	now := time.Now()
	ord := &entity.WorkOrder{
		ID:           uuid.New().String(),
		UserID:       userID,
		CustomerID:   customer.ID,
		CustomerName: customer.Name, // cópia para listagem e histórico
		Items:        items,
		Total:        order.Total(items),
		Status:       entity.StatusOpen,
		Date:         now.Format("2006-01-02"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.orderRepo.Create(ord); err != nil {
		return nil, err
	}
	resp := ToOrderResponse(ord)
	return &resp, nil
}

// buildItem monta uma linha. Com catalog_item_id, título/tipo/preço vêm do
// catálogo (cópia do momento) e a quantidade vazia vira 1.
func (uc *CreateOrderUseCase) buildItem(userID string, req *dto.OrderItemRequest) (entity.OrderItem, error) {
	if req.CatalogItemID != "" {
		cat, err := uc.catalogRepo.GetByID(userID, req.CatalogItemID)
		if err != nil {
			return entity.OrderItem{}, err
		}
		if cat == nil {
			return entity.OrderItem{}, fmt.Errorf("%w: item de catálogo %s", domain.ErrNotFound, req.CatalogItemID)
		}
		qty := req.Quantity
		if !qty.GreaterThan(decimal.Zero) {
			qty = decimal.NewFromInt(1)
		}
		return entity.OrderItem{
			ID:        uuid.New().String(),
			Title:     cat.Title,
			Quantity:  qty,
			UnitPrice: cat.UnitPrice,
			Type:      cat.Type,
		}, nil
	}

	if req.Title == "" || req.UnitPrice == "" {
		return entity.OrderItem{}, domain.ErrInvalidInput
	}
	if req.Type != entity.ItemTypeService && req.Type != entity.ItemTypeMaterial {
		return entity.OrderItem{}, domain.ErrInvalidInput
	}
	if !req.Quantity.GreaterThan(decimal.Zero) {
		return entity.OrderItem{}, domain.ErrInvalidInput
	}
	price, err := order.ParseMoney(req.UnitPrice)
	if err != nil {
		return entity.OrderItem{}, err
	}
	if price.LessThan(decimal.Zero) {
		return entity.OrderItem{}, domain.ErrInvalidInput
	}
	return entity.OrderItem{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Quantity:  req.Quantity,
		UnitPrice: price,
		Type:      req.Type,
	}, nil
}

// allowedByPlan aplica o limite mensal do plano free. Contas pro passam sem
// contagem. Qualquer falha de leitura libera a criação (fail open): uma
// indisponibilidade do banco de contagem não pode impedir o técnico de
// trabalhar — decisão de negócio, não descuido.
func (uc *CreateOrderUseCase) allowedByPlan(userID string) bool {
	profile, err := uc.profileRepo.Get(userID)
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("checagem de plano falhou, liberando criação")
		return true
	}
	if profile.IsPro() {
		return true
	}
	start, end := order.CurrentMonthRange(time.Now())
	count, err := uc.orderRepo.CountByDateRange(userID, start, end)
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("contagem mensal falhou, liberando criação")
		return true
	}
	return count < uc.freeLimit
}
