package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/application/usecase"
	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

type fakeProfileRepo struct {
	profile *entity.Profile
}

func (r *fakeProfileRepo) Get(userID string) (*entity.Profile, error) { return r.profile, nil }
func (r *fakeProfileRepo) Upsert(p *entity.Profile) error {
	r.profile = p
	return nil
}

type fakeUploader struct {
	err error
}

func (u *fakeUploader) Upload(_ context.Context, data []byte, filename, folder string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	return "https://media.test/" + folder + "/" + filename, nil
}

func strPtr(s string) *string { return &s }

func TestProfileGet_SemPerfil(t *testing.T) {
	uc := usecase.NewProfileUseCase(&fakeProfileRepo{}, &fakeUploader{})
	_, err := uc.Get(testUserID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Merge parcial: campos não enviados preservam o valor salvo.
func TestProfileUpdate_MergeParcial(t *testing.T) {
	repo := &fakeProfileRepo{profile: &entity.Profile{
		UserID:       testUserID,
		BusinessName: "Refrigeração Silva",
		Phone:        "11999990000",
		PixKey:       "chave-antiga",
		Plan:         entity.PlanPro,
	}}
	uc := usecase.NewProfileUseCase(repo, &fakeUploader{})

	resp, err := uc.Update(testUserID, dto.UpdateProfileRequest{
		PixKey: strPtr("nova-chave"),
	})
	require.NoError(t, err)

	assert.Equal(t, "nova-chave", resp.PixKey)
	assert.Equal(t, "Refrigeração Silva", resp.BusinessName, "campo não enviado é preservado")
	assert.Equal(t, "11999990000", resp.Phone)
	assert.Equal(t, entity.PlanPro, resp.Plan, "o plano não é editável por aqui")
}

func TestProfileUpdate_CriaPerfilFreeQuandoNaoExiste(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := usecase.NewProfileUseCase(repo, &fakeUploader{})

	resp, err := uc.Update(testUserID, dto.UpdateProfileRequest{
		BusinessName: strPtr("Elétrica Souza"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PlanFree, resp.Plan)
	assert.Equal(t, "Elétrica Souza", resp.BusinessName)
}

func TestProfileUpdate_NomeVazioRejeitado(t *testing.T) {
	repo := &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID, BusinessName: "X"}}
	uc := usecase.NewProfileUseCase(repo, &fakeUploader{})

	_, err := uc.Update(testUserID, dto.UpdateProfileRequest{BusinessName: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProfileUpdate_CNPJValidadoEMascarado(t *testing.T) {
	repo := &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID}}
	uc := usecase.NewProfileUseCase(repo, &fakeUploader{})

	resp, err := uc.Update(testUserID, dto.UpdateProfileRequest{CNPJ: strPtr("11222333000181")})
	require.NoError(t, err)
	assert.Equal(t, "11.222.333/0001-81", resp.CNPJ)

	_, err = uc.Update(testUserID, dto.UpdateProfileRequest{CNPJ: strPtr("11222333000100")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUploadLogo_FalhaNaoTocaNoPerfil(t *testing.T) {
	repo := &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID, LogoURL: "https://media.test/antigo"}}
	uc := usecase.NewProfileUseCase(repo, &fakeUploader{err: assert.AnError})

	_, err := uc.UploadLogo(context.Background(), testUserID, []byte("img"))
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Equal(t, "https://media.test/antigo", repo.profile.LogoURL)
}

func TestUploadLogo(t *testing.T) {
	repo := &fakeProfileRepo{profile: &entity.Profile{UserID: testUserID}}
	uc := usecase.NewProfileUseCase(repo, &fakeUploader{})

	resp, err := uc.UploadLogo(context.Background(), testUserID, []byte("img"))
	require.NoError(t, err)
	assert.Contains(t, resp.LogoURL, "servus_logos")
}

func TestSubscriptionLink(t *testing.T) {
	uc := usecase.NewProfileUseCase(&fakeProfileRepo{}, &fakeUploader{})

	resp, err := uc.SubscriptionLink("5511999990000")
	require.NoError(t, err)
	assert.Contains(t, resp.URL, "https://wa.me/5511999990000?text=")

	_, err = uc.SubscriptionLink("")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
