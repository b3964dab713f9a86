package repository

import "github.com/servusapp/servus-api/internal/domain/entity"

// CustomerRepository define o porto de persistência de Customer.
// Toda operação recebe o userID dono do dado — o isolamento por usuário é
// responsabilidade do gateway, não do schema.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(userID, id string) (*entity.Customer, error)
	// ListByUser lista os clientes do usuário, mais recentes primeiro.
	ListByUser(userID string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(userID, id string) error
}
