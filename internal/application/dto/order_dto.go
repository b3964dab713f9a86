package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest linha de O.S. no body de criação.
// Com CatalogItemID preenchido, título, tipo e preço são copiados do catálogo
// e Quantity vazia vira 1. Sem CatalogItemID a linha é avulsa e todos os
// campos são obrigatórios. UnitPrice aceita vírgula decimal.
type OrderItemRequest struct {
	CatalogItemID string          `json:"catalog_item_id,omitempty"`
	Title         string          `json:"title,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     string          `json:"unit_price,omitempty"`
	Type          string          `json:"type,omitempty"` // service | material
}

// CreateOrderRequest body de POST /api/orders.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderItemResponse linha de O.S. em respostas.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Type      string          `json:"type"`
}

// OrderPhotoResponse foto de evidência em respostas.
type OrderPhotoResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Type      string `json:"type"` // before | after
	Caption   string `json:"caption,omitempty"`
	CreatedAt string `json:"created_at"`
}

// OrderResponse O.S. completa em respostas.
type OrderResponse struct {
	ID           string               `json:"id"`
	Number       string               `json:"number"` // curto, exibido em documentos
	CustomerID   string               `json:"customer_id"`
	CustomerName string               `json:"customer_name"`
	Items        []OrderItemResponse  `json:"items"`
	Total        decimal.Decimal      `json:"total"`
	Status       string               `json:"status"`
	Date         string               `json:"date"` // YYYY-MM-DD
	SignatureURL string               `json:"signature_url,omitempty"`
	Photos       []OrderPhotoResponse `json:"photos,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// SignatureRequest body de POST /api/orders/:id/signature.
// A assinatura chega em base64 (com ou sem prefixo data:image).
type SignatureRequest struct {
	ImageBase64 string `json:"image_base64"`
}

// StatusResponse resposta das transições de status.
type StatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
