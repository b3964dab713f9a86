package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de item: serviço ou peça/material.
const (
	ItemTypeService  = "service"
	ItemTypeMaterial = "material"
)

// CatalogItem é uma entrada reutilizável da tabela de preços do técnico.
// Serve de modelo para OrderItem; alterações aqui nunca afetam O.S. já criadas.
type CatalogItem struct {
	ID        string
	UserID    string
	Title     string
	UnitPrice decimal.Decimal
	Type      string // ItemTypeService | ItemTypeMaterial
	CreatedAt time.Time
}
