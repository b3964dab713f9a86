// Package mail envia os emails transacionais de conta (verificação e
// recuperação de senha) por SMTP. Sem SMTP_HOST configurado, use o LogMailer.
package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/servusapp/servus-api/pkg/config"
	"github.com/servusapp/servus-api/pkg/logger"
)

// SMTPMailer envia emails via gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer constrói o mailer a partir da configuração SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendVerificationEmail envia o link de confirmação de conta.
func (m *SMTPMailer) SendVerificationEmail(_ context.Context, to, link string) error {
	body := fmt.Sprintf(
		"<p>Bem-vindo ao Servus!</p><p>Confirme seu email clicando no link abaixo:</p><p><a href=%q>Verificar email</a></p>",
		link,
	)
	return m.send(to, "Confirme seu email — Servus", body)
}

// SendPasswordResetEmail envia o link de redefinição de senha.
func (m *SMTPMailer) SendPasswordResetEmail(_ context.Context, to, link string) error {
	body := fmt.Sprintf(
		"<p>Recebemos um pedido de redefinição de senha.</p><p><a href=%q>Redefinir senha</a></p><p>Se não foi você, ignore este email.</p>",
		link,
	)
	return m.send(to, "Redefinição de senha — Servus", body)
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar email: %w", err)
	}
	return nil
}

// LogMailer imprime os links no log em vez de enviar. Usado em desenvolvimento
// quando SMTP_HOST está vazio.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer constrói o mailer de log.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendVerificationEmail(_ context.Context, to, link string) error {
	m.log.Info().Str("to", to).Str("link", link).Msg("email de verificação (modo log)")
	return nil
}

func (m *LogMailer) SendPasswordResetEmail(_ context.Context, to, link string) error {
	m.log.Info().Str("to", to).Str("link", link).Msg("email de redefinição de senha (modo log)")
	return nil
}
