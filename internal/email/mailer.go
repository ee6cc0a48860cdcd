package email

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/barbereasy/barbereasy-api/internal/config"
)

type Sender interface {
	SendPasswordReset(to string, token string) error
}

type Mailer struct {
	dialer *gomail.Dialer
	from   string
	appURL string
}

func NewMailer(cfg *config.Config) *Mailer {
	m := &Mailer{
		from:   cfg.MailFrom,
		appURL: cfg.AppURL,
	}

	if cfg.SMTPHost != "" {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	}

	return m
}

func (m *Mailer) SendPasswordReset(to string, token string) error {
	link := fmt.Sprintf("%s/redefinir-senha?token=%s", m.appURL, token)

	// Sem SMTP configurado (dev) o link só vai para o log
	if m.dialer == nil {
		log.Info().Str("to", to).Str("link", link).Msg("password reset (smtp disabled)")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Redefinição de senha — BarberEasy")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Para redefinir sua senha, acesse o link abaixo:</p><p><a href=%q>%s</a></p><p>O link expira em 1 hora.</p>",
		link, link,
	))

	return m.dialer.DialAndSend(msg)
}

var _ Sender = (*Mailer)(nil)
