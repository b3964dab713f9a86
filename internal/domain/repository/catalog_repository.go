package repository

import "github.com/servusapp/servus-api/internal/domain/entity"

// CatalogRepository define o porto de persistência do catálogo de preços.
type CatalogRepository interface {
	Create(item *entity.CatalogItem) error
	GetByID(userID, id string) (*entity.CatalogItem, error)
	// ListByUser lista o catálogo do usuário em ordem alfabética de título.
	ListByUser(userID string) ([]*entity.CatalogItem, error)
	Delete(userID, id string) error
}
