package entity

import "time"

// Planos de assinatura.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Profile é o perfil de negócio do técnico, chaveado diretamente pelo UserID
// (um por conta). Salvo com semântica de merge: campos não enviados são
// preservados. Plan controla o limite mensal de criação de O.S.
type Profile struct {
	UserID       string
	BusinessName string
	Phone        string
	PixKey       string
	Address      string
	Email        string
	LogoURL      string
	CNPJ         string
	Plan         string // PlanFree | PlanPro (vazio = free)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsPro indica se a conta tem plano pago (sem limite mensal).
func (p *Profile) IsPro() bool {
	return p != nil && p.Plan == PlanPro
}
