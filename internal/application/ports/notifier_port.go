package ports

import "context"

// Notifier define el puerto de salida para mensajes al usuario (correo, broker, log).
// El contexto debe llevar un timeout para evitar bloqueos en el envío.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}
