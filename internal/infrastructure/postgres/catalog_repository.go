package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/servusapp/servus-api/internal/domain/entity"
	"github.com/servusapp/servus-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementação de CatalogRepository.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository constrói o adaptador.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// Create persiste um item do catálogo.
func (r *CatalogRepo) Create(item *entity.CatalogItem) error {
	query := `
		INSERT INTO catalog_items (id, user_id, title, unit_price, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.Title, item.UnitPrice, item.Type, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert catalog item: %w", err)
	}
	return nil
}

// GetByID obtém um item do catálogo do usuário.
func (r *CatalogRepo) GetByID(userID, id string) (*entity.CatalogItem, error) {
	query := `
		SELECT id, user_id, title, unit_price, type, created_at
		FROM catalog_items WHERE user_id = $1 AND id = $2`
	var it entity.CatalogItem
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&it.ID, &it.UserID, &it.Title, &it.UnitPrice, &it.Type, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog item: %w", err)
	}
	return &it, nil
}

// ListByUser lista o catálogo em ordem alfabética de título.
func (r *CatalogRepo) ListByUser(userID string) ([]*entity.CatalogItem, error) {
	query := `
		SELECT id, user_id, title, unit_price, type, created_at
		FROM catalog_items WHERE user_id = $1 ORDER BY title ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogItem
	for rows.Next() {
		var it entity.CatalogItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.Title, &it.UnitPrice, &it.Type, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete remove um item do catálogo do usuário.
func (r *CatalogRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM catalog_items WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete catalog item: %w", err)
	}
	return nil
}
