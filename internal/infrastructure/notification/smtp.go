// Package notification implementa el puerto Notifier: correo SMTP, eventos en
// Kafka o solo log.
package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/bikeshop-api/internal/application/ports"
	"github.com/jhoicas/bikeshop-api/pkg/config"
)

var _ ports.Notifier = (*SMTPNotifier)(nil)

// mailSender abstrae gomail.Dialer para poder probar sin servidor.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier envía correo de texto plano vía gomail.
type SMTPNotifier struct {
	dialer mailSender
	from   string
}

// NewSMTPNotifier construye el notificador con las credenciales de cfg.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send envía el mensaje. gomail no acepta context: si ctx vence antes de que
// termine el envío se devuelve ctx.Err() y el envío sigue en segundo plano.
func (n *SMTPNotifier) Send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() { done <- n.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp: %w", ctx.Err())
	}
}
