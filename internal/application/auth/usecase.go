package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
	"github.com/servusapp/servus-api/internal/domain/repository"
	"github.com/servusapp/servus-api/pkg/br"
	"github.com/servusapp/servus-api/pkg/jwt"
)

// Pasta do host de mídia onde ficam os logos.
const logoFolder = "servus_logos"

// Validade dos tokens enviados por email.
const (
	verifyTokenTTL = 48 * time.Hour
	resetTokenTTL  = 2 * time.Hour
)

const minPasswordLen = 6

// JWTConfig configuração para geração de tokens de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação: cadastro, login, verificação de
// email, recuperação e troca de senha.
type UseCase struct {
	userRepo    repository.UserRepository
	tokenRepo   repository.AuthTokenRepository
	profileRepo repository.ProfileRepository
	uploader    MediaUploader
	mailer      Mailer
	jwtCfg      JWTConfig
	baseURL     string
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(
	userRepo repository.UserRepository,
	tokenRepo repository.AuthTokenRepository,
	profileRepo repository.ProfileRepository,
	uploader MediaUploader,
	mailer Mailer,
	jwtCfg JWTConfig,
	baseURL string,
) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		profileRepo: profileRepo,
		uploader:    uploader,
		mailer:      mailer,
		jwtCfg:      jwtCfg,
		baseURL:     baseURL,
	}
}

// Register cria a conta (não verificada), salva o perfil inicial e envia o
// link de verificação. O logo opcional é subido antes do perfil: se o upload
// falhar, o cadastro aborta em vez de salvar um perfil sem logo.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || in.BusinessName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Password != in.ConfirmPassword {
		return nil, fmt.Errorf("%w: as senhas não conferem", domain.ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: a senha deve ter pelo menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
	}
	if in.CNPJ != "" {
		if err := br.ValidateCNPJ(in.CNPJ); err != nil {
			return nil, fmt.Errorf("%w: CNPJ inválido", domain.ErrInvalidInput)
		}
	}

	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:            uuid.New().String(),
		Email:         email,
		PasswordHash:  string(hash),
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	var logoURL string
	if in.LogoBase64 != "" {
		logoURL, err = uc.uploader.UploadBase64(ctx, in.LogoBase64, logoFolder)
		if err != nil {
			return nil, fmt.Errorf("%w: logo", domain.ErrUploadFailed)
		}
	}

	profile := &entity.Profile{
		UserID:       user.ID,
		BusinessName: in.BusinessName,
		Phone:        in.Phone,
		Email:        email,
		LogoURL:      logoURL,
		CNPJ:         br.FormatCNPJ(in.CNPJ),
		Plan:         entity.PlanFree,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}

	if err := uc.issueToken(ctx, user, entity.TokenPurposeVerifyEmail); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		User:    *toUserResponse(user),
		Message: "Conta criada. Confirme o link enviado por email antes de entrar.",
	}, nil
}

// Login verifica email/senha e gera o JWT. Senha correta numa conta não
// verificada é rejeitada na hora (equivale ao logout imediato do app) e o
// email de verificação não é reenviado automaticamente.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// VerifyEmail consome o token de verificação e marca a conta como verificada.
func (uc *UseCase) VerifyEmail(token string) error {
	t, err := uc.consumableToken(token, entity.TokenPurposeVerifyEmail)
	if err != nil {
		return err
	}
	if err := uc.userRepo.MarkEmailVerified(t.UserID); err != nil {
		return err
	}
	return uc.tokenRepo.Delete(t.Token)
}

// ForgotPassword emite e envia o token de recuperação de senha.
func (uc *UseCase) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.issueToken(ctx, user, entity.TokenPurposeResetPassword)
}

// ResetPassword consome o token de recuperação e grava a nova senha.
func (uc *UseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	if len(in.NewPassword) < minPasswordLen {
		return fmt.Errorf("%w: a senha deve ter pelo menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
	}
	t, err := uc.consumableToken(in.Token, entity.TokenPurposeResetPassword)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(t.UserID, string(hash)); err != nil {
		return err
	}
	return uc.tokenRepo.Delete(t.Token)
}

// ChangePassword troca a senha de uma conta logada. A senha atual é conferida
// de novo antes da troca (reautenticação).
func (uc *UseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	if in.NewPassword != in.ConfirmPassword {
		return fmt.Errorf("%w: as senhas não conferem", domain.ErrInvalidInput)
	}
	if len(in.NewPassword) < minPasswordLen {
		return fmt.Errorf("%w: a senha deve ter pelo menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(user.ID, string(hash))
}

func (uc *UseCase) issueToken(ctx context.Context, user *entity.User, purpose string) error {
	ttl := verifyTokenTTL
	if purpose == entity.TokenPurposeResetPassword {
		ttl = resetTokenTTL
	}
	now := time.Now()
	t := &entity.AuthToken{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		Purpose:   purpose,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := uc.tokenRepo.Create(t); err != nil {
		return err
	}
	switch purpose {
	case entity.TokenPurposeVerifyEmail:
		link := fmt.Sprintf("%s/api/auth/verify?token=%s", uc.baseURL, t.Token)
		return uc.mailer.SendVerificationEmail(ctx, user.Email, link)
	case entity.TokenPurposeResetPassword:
		link := fmt.Sprintf("%s/reset-password?token=%s", uc.baseURL, t.Token)
		return uc.mailer.SendPasswordResetEmail(ctx, user.Email, link)
	}
	return nil
}

func (uc *UseCase) consumableToken(token, purpose string) (*entity.AuthToken, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}
	t, err := uc.tokenRepo.Get(token)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Purpose != purpose || t.Expired(time.Now()) {
		return nil, domain.ErrInvalidToken
	}
	return t, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}
