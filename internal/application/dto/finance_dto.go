package dto

import "github.com/shopspring/decimal"

// FinanceSummaryRequest filtros do painel financeiro (query string).
// Min e Max aceitam vírgula decimal; Search casa trecho do nome do cliente.
type FinanceSummaryRequest struct {
	Year   int    `query:"year"`
	Month  int    `query:"month"`
	Search string `query:"search"`
	Status string `query:"status"`
	Min    string `query:"min"`
	Max    string `query:"max"`
}

// FinanceSummaryResponse totais + lista filtrada do mês.
type FinanceSummaryResponse struct {
	Invoiced decimal.Decimal `json:"invoiced"`
	Pending  decimal.Decimal `json:"pending"`
	Count    int             `json:"count"`
	Orders   []OrderResponse `json:"orders"`
}

// HomeSummaryResponse resumo da tela inicial do mês corrente.
type HomeSummaryResponse struct {
	Received  decimal.Decimal `json:"received"`
	ToReceive decimal.Decimal `json:"to_receive"`
	Orders    []OrderResponse `json:"orders"`
}
