package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servusapp/servus-api/internal/application/auth"
	"github.com/servusapp/servus-api/internal/domain/entity"
	apphttp "github.com/servusapp/servus-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs mínimos para montar o auth.UseCase real atrás do handler
// ──────────────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(u *entity.User) error { return nil }
func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}
func (r *stubUserRepo) MarkEmailVerified(id string) error            { return nil }
func (r *stubUserRepo) UpdatePassword(id, passwordHash string) error { return nil }

type stubTokenRepo struct {
	created int
}

func (r *stubTokenRepo) Create(t *entity.AuthToken) error { r.created++; return nil }
func (r *stubTokenRepo) Get(token string) (*entity.AuthToken, error) {
	return nil, nil
}
func (r *stubTokenRepo) Delete(token string) error { return nil }

type stubProfileRepo struct{}

func (r *stubProfileRepo) Get(userID string) (*entity.Profile, error) { return nil, nil }
func (r *stubProfileRepo) Upsert(p *entity.Profile) error             { return nil }

type stubUploader struct{}

func (u *stubUploader) UploadBase64(_ context.Context, base64Image, folder string) (string, error) {
	return "https://media.test/" + folder + "/logo", nil
}

type stubMailer struct {
	resetLinks []string
}

func (m *stubMailer) SendVerificationEmail(_ context.Context, to, link string) error { return nil }
func (m *stubMailer) SendPasswordResetEmail(_ context.Context, to, link string) error {
	m.resetLinks = append(m.resetLinks, link)
	return nil
}

func buildAuthApp(users *stubUserRepo, mailer *stubMailer) *fiber.App {
	uc := auth.NewUseCase(users, &stubTokenRepo{}, &stubProfileRepo{}, &stubUploader{}, mailer, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, "http://localhost:8080")
	handler := apphttp.NewAuthHandler(uc)

	app := fiber.New()
	app.Post("/api/auth/forgot-password", handler.ForgotPassword)
	return app
}

func postForgot(t *testing.T, app *fiber.App, email string) *http.Response {
	t.Helper()
	body := strings.NewReader(`{"email":"` + email + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ForgotPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_EmailConhecidoEnviaLink(t *testing.T) {
	users := &stubUserRepo{users: map[string]*entity.User{
		testUserID: {ID: testUserID, Email: testEmail, EmailVerified: true},
	}}
	mailer := &stubMailer{}
	app := buildAuthApp(users, mailer)

	resp := postForgot(t, app, testEmail)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, mailer.resetLinks, 1, "link de redefinição enviado")
}

// Email desconhecido recebe a mesma resposta 200 de email conhecido, sem
// revelar quais contas existem.
func TestForgotPassword_EmailDesconhecidoRespondeIgual(t *testing.T) {
	users := &stubUserRepo{users: map[string]*entity.User{}}
	mailer := &stubMailer{}
	app := buildAuthApp(users, mailer)

	resp := postForgot(t, app, "ninguem@example.com")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, mailer.resetLinks, "nenhum email sai para conta inexistente")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["message"], "se o email estiver cadastrado")
}
