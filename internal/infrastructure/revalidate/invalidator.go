// Package revalidate publica la señal de invalidación de vistas que sigue a cada mutación de facturas.
package revalidate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Facturas-dashboard/internal/application/billing"
	"github.com/jhoicas/Facturas-dashboard/pkg/config"
	"github.com/jhoicas/Facturas-dashboard/pkg/logger"
)

var (
	_ billing.PathInvalidator = (*RedisInvalidator)(nil)
	_ billing.PathInvalidator = (*LogInvalidator)(nil)
	_ Publisher               = (*redis.Client)(nil)
)

// Message cuerpo publicado en el canal: la ruta cuya vista quedó desactualizada.
type Message struct {
	Path      string `json:"path"`
	Timestamp int64  `json:"timestamp"` // unix nanos
}

// Publisher subconjunto de *redis.Client que usa el invalidador.
// *redis.Client y *redis.ClusterClient lo satisfacen.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisInvalidator publica cada ruta invalidada en un canal Pub/Sub de Redis.
// Los consumidores (front, caché de borde) se suscriben al canal y refrescan la vista.
type RedisInvalidator struct {
	client  Publisher
	channel string
	log     *logger.Logger
	now     func() time.Time
}

// NewRedisInvalidator construye el invalidador. El llamador conserva la propiedad del cliente.
func NewRedisInvalidator(client Publisher, channel string, log *logger.Logger) *RedisInvalidator {
	return &RedisInvalidator{
		client:  client,
		channel: channel,
		log:     log.Component("revalidate"),
		now:     time.Now,
	}
}

// Revalidate publica {path, timestamp} en el canal configurado.
func (i *RedisInvalidator) Revalidate(ctx context.Context, path string) error {
	data, err := json.Marshal(Message{Path: path, Timestamp: i.now().UnixNano()})
	if err != nil {
		return fmt.Errorf("serializar mensaje: %w", err)
	}
	receivers, err := i.client.Publish(ctx, i.channel, data).Result()
	if err != nil {
		return fmt.Errorf("publicar invalidación: %w", err)
	}
	i.log.Debug().Str("channel", i.channel).Str("path", path).Int64("receivers", receivers).Msg("vista invalidada")
	return nil
}

// LogInvalidator solo registra la invalidación (sin Redis configurado).
type LogInvalidator struct {
	log *logger.Logger
}

func NewLogInvalidator(log *logger.Logger) *LogInvalidator {
	return &LogInvalidator{log: log.Component("revalidate")}
}

func (i *LogInvalidator) Revalidate(_ context.Context, path string) error {
	i.log.Info().Str("path", path).Msg("vista invalidada")
	return nil
}

// NewRedisClient crea el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return client, nil
}
