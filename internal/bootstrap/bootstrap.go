// Package bootstrap arma los adaptadores según la configuración (STORE_DRIVER,
// NOTIFIER_DRIVER). Lo comparten cmd/api y cmd/seed.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/bikeshop-api/internal/application/ports"
	"github.com/jhoicas/bikeshop-api/internal/domain/repository"
	"github.com/jhoicas/bikeshop-api/internal/infrastructure/memory"
	"github.com/jhoicas/bikeshop-api/internal/infrastructure/mongo"
	"github.com/jhoicas/bikeshop-api/internal/infrastructure/notification"
	"github.com/jhoicas/bikeshop-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bikeshop-api/pkg/config"
	"github.com/jhoicas/bikeshop-api/pkg/logger"
)

// Stores repositorios listos para inyectar en los casos de uso.
type Stores struct {
	Users  repository.UserRepository
	Bikes  repository.BikeRepository
	Orders repository.OrderRepository

	close func(context.Context) error
}

// Close libera las conexiones del almacenamiento.
func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStores conecta el almacenamiento elegido y aplica su esquema.
func OpenStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Stores, error) {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		connCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
		defer cancel()
		client, err := mongo.Connect(connCtx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("conexión a MongoDB: %w", err)
		}
		db := client.Database(cfg.Mongo.Database)
		if err := mongo.EnsureSchema(connCtx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("esquema MongoDB: %w", err)
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("MongoDB conectado")
		return &Stores{
			Users:  mongo.NewUserRepository(db),
			Bikes:  mongo.NewBikeRepository(db),
			Orders: mongo.NewOrderRepository(db),
			close:  client.Disconnect,
		}, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("PostgreSQL conectado")
		return &Stores{
			Users:  postgres.NewUserRepository(pool),
			Bikes:  postgres.NewBikeRepository(pool),
			Orders: postgres.NewOrderRepository(pool),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.StoreMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return &Stores{
			Users:  memory.NewUserRepository(),
			Bikes:  memory.NewBikeRepository(),
			Orders: memory.NewOrderRepository(),
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
}

// NewNotifier construye el canal del mensaje de bienvenida. El cierre devuelto
// vacía el productor de Kafka; para los demás drivers no hace nada.
func NewNotifier(cfg *config.Config, log *logger.Logger) (ports.Notifier, func() error, error) {
	nop := func() error { return nil }
	switch cfg.Notifier.Driver {
	case config.NotifierSMTP:
		if cfg.SMTP.User == "" {
			return nil, nil, fmt.Errorf("NOTIFIER_DRIVER=smtp requiere SMTP_USER")
		}
		return notification.NewSMTPNotifier(cfg.SMTP), nop, nil
	case config.NotifierKafka:
		if len(cfg.Kafka.Brokers) == 0 {
			return nil, nil, fmt.Errorf("NOTIFIER_DRIVER=kafka requiere KAFKA_BROKERS")
		}
		k := notification.NewKafkaNotifier(cfg.Kafka)
		return k, k.Close, nil
	case config.NotifierLog:
		return notification.NewLogNotifier(log), nop, nil
	}
	return nil, nil, fmt.Errorf("NOTIFIER_DRIVER desconocido: %q", cfg.Notifier.Driver)
}
