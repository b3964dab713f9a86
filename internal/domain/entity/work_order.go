package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do ciclo de vida de uma O.S.
// draft é um valor legado: nunca é produzido por transição, mas ainda precisa
// renderizar corretamente em listagens e documentos.
const (
	StatusDraft     = "draft"
	StatusOpen      = "open"
	StatusCompleted = "completed"
	StatusPaid      = "paid"
)

// Tipos de foto de evidência.
const (
	PhotoTypeBefore = "before"
	PhotoTypeAfter  = "after"
)

// OrderItem é uma linha de O.S.: cópia imutável de um item do catálogo ou
// lançamento avulso. Vive embutido no documento da O.S. (coluna JSONB), nunca
// é endereçável fora dela.
type OrderItem struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Type      string          `json:"type"` // ItemTypeService | ItemTypeMaterial
}

// OrderPhoto é uma foto de evidência (antes/depois) anexada à O.S.
// Ciclo de vida independente: pode ser adicionada ou removida a qualquer momento.
type OrderPhoto struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Type      string `json:"type"` // PhotoTypeBefore | PhotoTypeAfter
	Caption   string `json:"caption,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// WorkOrder representa uma ordem de serviço.
//
// CustomerName é uma cópia deliberada do nome do cliente no momento da
// criação — O.S. históricas mantêm o nome da época mesmo que o cadastro do
// cliente mude depois. Total é calculado na criação (Σ qtd × preço unitário)
// e armazenado; nunca é recalculado a partir dos itens depois de salvo.
type WorkOrder struct {
	ID           string
	UserID       string
	CustomerID   string
	CustomerName string
	Items        []OrderItem
	Total        decimal.Decimal
	Status       string
	Date         string // YYYY-MM-DD
	SignatureURL string
	Photos       []OrderPhoto
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Number devolve o número curto exibido em documentos (#A1B2C3).
func (o *WorkOrder) Number() string {
	id := o.ID
	if len(id) > 6 {
		id = id[:6]
	}
	out := make([]byte, len(id))
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
