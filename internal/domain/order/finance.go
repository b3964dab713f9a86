package order

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
)

// Summary totais do painel financeiro de um mês.
// Invoiced soma tudo; Pending soma o que ainda não está pago.
type Summary struct {
	Invoiced decimal.Decimal
	Pending  decimal.Decimal
	Count    int
}

// HomeSummary totais do resumo da tela inicial.
// Received soma as O.S. pagas; ToReceive as abertas e concluídas.
type HomeSummary struct {
	Received  decimal.Decimal
	ToReceive decimal.Decimal
}

// Summarize reduz a lista filtrada nos totais do painel financeiro.
func Summarize(orders []*entity.WorkOrder) Summary {
	s := Summary{Invoiced: decimal.Zero, Pending: decimal.Zero}
	for _, o := range orders {
		s.Invoiced = s.Invoiced.Add(o.Total)
		if o.Status != entity.StatusPaid {
			s.Pending = s.Pending.Add(o.Total)
		}
	}
	s.Count = len(orders)
	return s
}

// SummarizeHome reduz a lista do mês nos totais da tela inicial.
func SummarizeHome(orders []*entity.WorkOrder) HomeSummary {
	s := HomeSummary{Received: decimal.Zero, ToReceive: decimal.Zero}
	for _, o := range orders {
		switch o.Status {
		case entity.StatusPaid:
			s.Received = s.Received.Add(o.Total)
		case entity.StatusOpen, entity.StatusCompleted:
			s.ToReceive = s.ToReceive.Add(o.Total)
		}
	}
	return s
}

// Filter critérios aplicados em memória sobre o conjunto já carregado do mês.
// Nenhum filtro dispara nova consulta ao banco.
type Filter struct {
	Search   string           // trecho do nome do cliente, sem diferenciar maiúsculas
	Status   string           // status exato; vazio = todos
	MinTotal *decimal.Decimal // limite inferior inclusivo
	MaxTotal *decimal.Decimal // limite superior inclusivo
}

// Apply devolve as O.S. que passam em todos os critérios do filtro.
func (f Filter) Apply(orders []*entity.WorkOrder) []*entity.WorkOrder {
	out := make([]*entity.WorkOrder, 0, len(orders))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, o := range orders {
		if search != "" && !strings.Contains(strings.ToLower(o.CustomerName), search) {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.MinTotal != nil && o.Total.LessThan(*f.MinTotal) {
			continue
		}
		if f.MaxTotal != nil && o.Total.GreaterThan(*f.MaxTotal) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ParseMoney interpreta um valor monetário digitado pelo usuário, aceitando
// vírgula decimal ("150,50") e normalizando para ponto antes do parse.
func ParseMoney(s string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return d, nil
}

// Total calcula o valor de uma O.S. no momento da criação:
// Σ quantidade × preço unitário. Depois de salvo, o total é um campo
// armazenado — nunca é recalculado a partir dos itens.
func Total(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity.Mul(it.UnitPrice))
	}
	return total
}
