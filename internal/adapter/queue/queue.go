package queue

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seu-repo/concierge-bot/pkg/config"
)

// Handler processes one delivered message.
type Handler func(ctx context.Context, data []byte) error

// MessageQueue defines the interface for a message queue adapter
type MessageQueue interface {
	Publish(ctx context.Context, subject string, data []byte) error
	Subscribe(subject string, handler Handler) error
	// Ping reports whether the broker connection is usable.
	Ping() error
	Close() error
}

// New connects to the broker selected by cfg.Driver.
func New(cfg config.QueueConfig, log *zap.Logger) (MessageQueue, error) {
	switch cfg.Driver {
	case "nats":
		return NewNATSQueue(cfg.URL, log)
	case "rabbitmq":
		return NewRabbitMQQueue(cfg.URL, log)
	default:
		return nil, fmt.Errorf("queue: unsupported driver %q", cfg.Driver)
	}
}
