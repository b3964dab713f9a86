package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
	"github.com/servusapp/servus-api/internal/domain/order"
	"github.com/servusapp/servus-api/internal/domain/repository"
)

// CatalogUseCase casos de uso do catálogo de serviços e materiais.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase constrói o caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Create cria um item reutilizável da tabela de preços.
func (uc *CatalogUseCase) Create(userID string, in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	if in.Title == "" || in.UnitPrice == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.ItemTypeService && in.Type != entity.ItemTypeMaterial {
		return nil, domain.ErrInvalidInput
	}
	price, err := order.ParseMoney(in.UnitPrice)
	if err != nil {
		return nil, err
	}
	if price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.CatalogItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     in.Title,
		UnitPrice: price,
		Type:      in.Type,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toCatalogItemResponse(item), nil
}

// List lista o catálogo do usuário em ordem alfabética.
func (uc *CatalogUseCase) List(userID string) ([]*dto.CatalogItemResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toCatalogItemResponse(it))
	}
	return out, nil
}

// Delete remove um item do catálogo. O.S. já criadas não são afetadas:
// as linhas delas são cópias.
func (uc *CatalogUseCase) Delete(userID, id string) error {
	item, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(userID, id)
}

func toCatalogItemResponse(it *entity.CatalogItem) *dto.CatalogItemResponse {
	return &dto.CatalogItemResponse{
		ID:        it.ID,
		Title:     it.Title,
		UnitPrice: it.UnitPrice,
		Type:      it.Type,
	}
}
