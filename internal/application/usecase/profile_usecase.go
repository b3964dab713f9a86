package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
	"github.com/servusapp/servus-api/internal/domain/repository"
	"github.com/servusapp/servus-api/pkg/br"
)

// Pasta do host de mídia onde ficam os logos.
const logoFolder = "servus_logos"

// MediaUploader sobe o logo novo para o host de mídia.
type MediaUploader interface {
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)
}

// ProfileUseCase casos de uso do perfil de negócio.
type ProfileUseCase struct {
	repo     repository.ProfileRepository
	uploader MediaUploader
}

// NewProfileUseCase constrói o caso de uso.
func NewProfileUseCase(repo repository.ProfileRepository, uploader MediaUploader) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, uploader: uploader}
}

// Get devolve o perfil do usuário.
func (uc *ProfileUseCase) Get(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(profile), nil
}

// Update grava o perfil com semântica de merge: só os campos enviados mudam.
// O plano não passa por aqui.
func (uc *ProfileUseCase) Update(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.Profile{UserID: userID, Plan: entity.PlanFree, CreatedAt: time.Now()}
	}
	if in.BusinessName != nil {
		if *in.BusinessName == "" {
			return nil, domain.ErrInvalidInput
		}
		profile.BusinessName = *in.BusinessName
	}
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.PixKey != nil {
		profile.PixKey = *in.PixKey
	}
	if in.Address != nil {
		profile.Address = *in.Address
	}
	if in.Email != nil {
		profile.Email = *in.Email
	}
	if in.CNPJ != nil {
		if *in.CNPJ != "" {
			if err := br.ValidateCNPJ(*in.CNPJ); err != nil {
				return nil, fmt.Errorf("%w: CNPJ inválido", domain.ErrInvalidInput)
			}
		}
		profile.CNPJ = br.FormatCNPJ(*in.CNPJ)
	}
	profile.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// UploadLogo sobe o novo logo e só então grava a URL no perfil. Se o upload
// falhar, o perfil não é tocado.
func (uc *ProfileUseCase) UploadLogo(ctx context.Context, userID string, data []byte) (*dto.ProfileResponse, error) {
	if len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	logoURL, err := uc.uploader.Upload(ctx, data, fmt.Sprintf("logo_%s.jpg", userID), logoFolder)
	if err != nil {
		return nil, fmt.Errorf("%w: logo", domain.ErrUploadFailed)
	}
	profile, err := uc.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.Profile{UserID: userID, Plan: entity.PlanFree, CreatedAt: time.Now()}
	}
	profile.LogoURL = logoURL
	profile.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// SubscriptionLink monta o deep link de upgrade via WhatsApp com a mensagem
// pré-preenchida.
func (uc *ProfileUseCase) SubscriptionLink(supportNumber string) (*dto.SubscriptionLinkResponse, error) {
	if supportNumber == "" {
		return nil, domain.ErrNotFound
	}
	msg := url.QueryEscape("Olá! Quero assinar o plano PRO do Servus.")
	return &dto.SubscriptionLinkResponse{
		URL: fmt.Sprintf("https://wa.me/%s?text=%s", supportNumber, msg),
	}, nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	plan := p.Plan
	if plan == "" {
		plan = entity.PlanFree
	}
	return &dto.ProfileResponse{
		BusinessName: p.BusinessName,
		Phone:        p.Phone,
		PixKey:       p.PixKey,
		Address:      p.Address,
		Email:        p.Email,
		LogoURL:      p.LogoURL,
		CNPJ:         p.CNPJ,
		Plan:         plan,
	}
}
