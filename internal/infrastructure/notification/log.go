package notification

import (
	"context"

	"github.com/jhoicas/bikeshop-api/internal/application/ports"
	"github.com/jhoicas/bikeshop-api/pkg/logger"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier solo registra el mensaje (desarrollo).
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador de log.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &LogNotifier{log: log.Named("notifier")}
}

func (n *LogNotifier) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.log.Info().Str("to", to).Str("subject", subject).Int("body_len", len(body)).Msg("mensaje de bienvenida")
	return nil
}
