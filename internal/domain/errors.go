package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrEmailNotVerified   = errors.New("email ainda não verificado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidToken       = errors.New("token inválido ou expirado")
	ErrForbidden          = errors.New("acesso negado")
	ErrPlanLimitReached   = errors.New("limite mensal do plano gratuito atingido")
	ErrUploadFailed       = errors.New("falha no upload da imagem")
)
