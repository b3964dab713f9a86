package dto

import "github.com/shopspring/decimal"

// CreateCatalogItemRequest body de POST /api/catalog.
// UnitPrice chega como string e aceita vírgula decimal ("35,90"), como o
// campo de preço do app.
type CreateCatalogItemRequest struct {
	Title     string `json:"title"`
	UnitPrice string `json:"unit_price"`
	Type      string `json:"type"` // service | material
}

// CatalogItemResponse item do catálogo em respostas.
type CatalogItemResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Type      string          `json:"type"`
}
