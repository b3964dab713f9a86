package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/servusapp/servus-api/internal/domain/entity"
	"github.com/servusapp/servus-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementação de ProfileRepository (uma linha por usuário).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository constrói o adaptador.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Get obtém o perfil do usuário; nil quando ainda não existe.
func (r *ProfileRepo) Get(userID string) (*entity.Profile, error) {
	query := `
		SELECT user_id, business_name, phone, pix_key, address, email, logo_url, cnpj, plan, created_at, updated_at
		FROM profiles WHERE user_id = $1`
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.UserID, &p.BusinessName, &p.Phone, &p.PixKey, &p.Address,
		&p.Email, &p.LogoURL, &p.CNPJ, &p.Plan, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Upsert grava o perfil completo; cria a linha na primeira gravação.
func (r *ProfileRepo) Upsert(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (user_id, business_name, phone, pix_key, address, email, logo_url, cnpj, plan, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			phone         = EXCLUDED.phone,
			pix_key       = EXCLUDED.pix_key,
			address       = EXCLUDED.address,
			email         = EXCLUDED.email,
			logo_url      = EXCLUDED.logo_url,
			cnpj          = EXCLUDED.cnpj,
			plan          = EXCLUDED.plan,
			updated_at    = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		profile.UserID, profile.BusinessName, profile.Phone, profile.PixKey, profile.Address,
		profile.Email, profile.LogoURL, profile.CNPJ, profile.Plan,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
