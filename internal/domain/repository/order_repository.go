package repository

import "github.com/servusapp/servus-api/internal/domain/entity"

// OrderRepository define o porto de persistência das ordens de serviço.
// Datas são strings YYYY-MM-DD; os recortes por intervalo usam comparação de
// string inclusiva nas duas pontas, igual ao app.
type OrderRepository interface {
	Create(order *entity.WorkOrder) error
	GetByID(userID, id string) (*entity.WorkOrder, error)
	// ListByUser lista as O.S. do usuário, mais recentes primeiro.
	ListByUser(userID string) ([]*entity.WorkOrder, error)
	// ListByDateRange lista as O.S. com date em [start, end], por date decrescente.
	ListByDateRange(userID, start, end string) ([]*entity.WorkOrder, error)
	// CountByDateRange conta as O.S. com date em [start, end] (checagem do plano).
	CountByDateRange(userID, start, end string) (int, error)
	// UpdateStatus sobrescreve o campo status por inteiro (last writer wins).
	UpdateStatus(userID, id, status string) error
	// SetSignature grava a URL da assinatura e o status forçado numa única escrita.
	SetSignature(userID, id, signatureURL, status string) error
	// AppendPhoto acrescenta uma foto ao array sem tocar nas existentes.
	AppendPhoto(userID, id string, photo entity.OrderPhoto) error
	// SetPhotos substitui o array de fotos (usado na remoção).
	SetPhotos(userID, id string, photos []entity.OrderPhoto) error
	Delete(userID, id string) error
}
