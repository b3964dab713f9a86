// Package order concentra as regras de negócio puras das ordens de serviço:
// a máquina de estados do ciclo de vida, os recortes de mês e a agregação
// financeira usada pelos painéis.
package order

import "github.com/servusapp/servus-api/internal/domain/entity"

// Advance devolve o próximo status do ciclo: open → completed → paid → open.
// draft é um valor legado que nenhuma transição produz; avançar uma O.S.
// nesse estado recomeça o ciclo em open. Toda escrita de status é uma
// sobrescrita completa do campo (last writer wins, sem checagem de versão).
func Advance(current string) string {
	switch current {
	case entity.StatusOpen:
		return entity.StatusCompleted
	case entity.StatusCompleted:
		return entity.StatusPaid
	case entity.StatusPaid:
		return entity.StatusOpen
	default:
		return entity.StatusOpen
	}
}

// SignedStatus é o status forçado pela coleta de assinatura: completed,
// qualquer que seja o status atual. É um segundo escritor da máquina de
// estados, independente do ciclo de Advance.
func SignedStatus() string {
	return entity.StatusCompleted
}

// ValidStatus informa se s é um dos quatro status conhecidos.
func ValidStatus(s string) bool {
	switch s {
	case entity.StatusDraft, entity.StatusOpen, entity.StatusCompleted, entity.StatusPaid:
		return true
	}
	return false
}
