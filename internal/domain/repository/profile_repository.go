package repository

import "github.com/servusapp/servus-api/internal/domain/entity"

// ProfileRepository define o porto de persistência do perfil de negócio,
// chaveado diretamente pelo userID (um por conta).
type ProfileRepository interface {
	Get(userID string) (*entity.Profile, error)
	// Upsert grava o perfil completo. A semântica de merge (preservar campos
	// não enviados) é resolvida no caso de uso, que lê antes de gravar.
	Upsert(profile *entity.Profile) error
}
