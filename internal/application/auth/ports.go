package auth

import "context"

// Mailer envia os emails transacionais de conta. A implementação SMTP fica em
// infrastructure/mail; em desenvolvimento um mailer de log imprime o link.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, link string) error
	SendPasswordResetEmail(ctx context.Context, to, link string) error
}

// MediaUploader sobe o logo enviado no cadastro para o host de mídia.
type MediaUploader interface {
	UploadBase64(ctx context.Context, base64Image, folder string) (string, error)
}
