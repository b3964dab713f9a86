package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
	"github.com/servusapp/servus-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação de OrderRepository. Itens e fotos vivem embutidos na
// linha da O.S. como colunas JSONB; date é TEXT (YYYY-MM-DD) de propósito, para
// que os recortes por intervalo sejam comparações de string inclusivas.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, user_id, customer_id, customer_name, items, total, status, date, signature_url, photos, created_at, updated_at`

// Create persiste a O.S. completa, itens e fotos inclusos.
func (r *OrderRepo) Create(order *entity.WorkOrder) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("serializar itens: %w", err)
	}
	photos, err := marshalPhotos(order.Photos)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO work_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.CustomerID, order.CustomerName,
		items, order.Total, order.Status, order.Date,
		order.SignatureURL, photos, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtém uma O.S. do usuário.
func (r *OrderRepo) GetByID(userID, id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM work_orders WHERE user_id = $1 AND id = $2`
	row := r.q.QueryRow(context.Background(), query, userID, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return o, nil
}

// ListByUser lista as O.S. do usuário, mais recentes primeiro.
func (r *OrderRepo) ListByUser(userID string) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM work_orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(query, userID)
}

// ListByDateRange lista as O.S. com date no intervalo [start, end], inclusivo
// nas duas pontas, por date decrescente.
func (r *OrderRepo) ListByDateRange(userID, start, end string) ([]*entity.WorkOrder, error) {
	query := `
		SELECT ` + orderColumns + ` FROM work_orders
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC, created_at DESC`
	return r.list(query, userID, start, end)
}

// CountByDateRange conta as O.S. no intervalo (checagem de limite do plano).
func (r *OrderRepo) CountByDateRange(userID, start, end string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM work_orders WHERE user_id = $1 AND date >= $2 AND date <= $3`,
		userID, start, end,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count work orders: %w", err)
	}
	return n, nil
}

// UpdateStatus sobrescreve o status (last writer wins).
func (r *OrderRepo) UpdateStatus(userID, id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE work_orders SET status = $3, updated_at = now() WHERE user_id = $1 AND id = $2`,
		userID, id, status,
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetSignature grava a URL da assinatura e o status forçado numa única escrita.
func (r *OrderRepo) SetSignature(userID, id, signatureURL, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE work_orders SET signature_url = $3, status = $4, updated_at = now() WHERE user_id = $1 AND id = $2`,
		userID, id, signatureURL, status,
	)
	if err != nil {
		return fmt.Errorf("set signature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AppendPhoto acrescenta uma foto ao array JSONB sem reescrever as existentes.
func (r *OrderRepo) AppendPhoto(userID, id string, photo entity.OrderPhoto) error {
	raw, err := json.Marshal(photo)
	if err != nil {
		return fmt.Errorf("serializar foto: %w", err)
	}
	tag, err := r.q.Exec(context.Background(),
		`UPDATE work_orders
		 SET photos = COALESCE(photos, '[]'::jsonb) || $3::jsonb, updated_at = now()
		 WHERE user_id = $1 AND id = $2`,
		userID, id, raw,
	)
	if err != nil {
		return fmt.Errorf("append photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetPhotos substitui o array de fotos por inteiro (remoção).
func (r *OrderRepo) SetPhotos(userID, id string, photos []entity.OrderPhoto) error {
	raw, err := marshalPhotos(photos)
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(context.Background(),
		`UPDATE work_orders SET photos = $3, updated_at = now() WHERE user_id = $1 AND id = $2`,
		userID, id, raw,
	)
	if err != nil {
		return fmt.Errorf("set photos: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma O.S. do usuário.
func (r *OrderRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM work_orders WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete work order: %w", err)
	}
	return nil
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.WorkOrder, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.WorkOrder, error) {
	var (
		o         entity.WorkOrder
		itemsRaw  []byte
		photosRaw []byte
	)
	err := row.Scan(
		&o.ID, &o.UserID, &o.CustomerID, &o.CustomerName,
		&itemsRaw, &o.Total, &o.Status, &o.Date,
		&o.SignatureURL, &photosRaw, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
			return nil, fmt.Errorf("decodificar itens: %w", err)
		}
	}
	if len(photosRaw) > 0 {
		if err := json.Unmarshal(photosRaw, &o.Photos); err != nil {
			return nil, fmt.Errorf("decodificar fotos: %w", err)
		}
	}
	return &o, nil
}

func marshalPhotos(photos []entity.OrderPhoto) ([]byte, error) {
	if photos == nil {
		photos = []entity.OrderPhoto{}
	}
	raw, err := json.Marshal(photos)
	if err != nil {
		return nil, fmt.Errorf("serializar fotos: %w", err)
	}
	return raw, nil
}
