package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/bikeshop-api/internal/application/ports"
	"github.com/jhoicas/bikeshop-api/pkg/config"
)

var _ ports.Notifier = (*KafkaNotifier)(nil)

// messageWriter subconjunto de kafka.Writer usado por el notificador.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WelcomeEvent mensaje publicado en el topic; un consumidor externo lo entrega.
type WelcomeEvent struct {
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	Body     string    `json:"body"`
	QueuedAt time.Time `json:"queuedAt"`
}

// KafkaNotifier publica el mensaje de bienvenida como evento, con el email como clave.
type KafkaNotifier struct {
	w messageWriter
}

// NewKafkaNotifier construye el productor. La escritura es síncrona para que
// Send respete el timeout del contexto.
func NewKafkaNotifier(cfg config.KafkaConfig) *KafkaNotifier {
	return &KafkaNotifier{
		w: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// Send serializa el evento y lo escribe en el topic.
func (n *KafkaNotifier) Send(ctx context.Context, to, subject, body string) error {
	value, err := json.Marshal(WelcomeEvent{To: to, Subject: subject, Body: body, QueuedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("kafka: serializar evento: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(to),
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "event", Value: []byte("user.registered")},
		},
	}
	if err := n.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: %w", err)
	}
	return nil
}

// Close vacía y cierra el writer.
func (n *KafkaNotifier) Close() error {
	return n.w.Close()
}
