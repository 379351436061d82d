package ports

import (
	"context"
	"time"

	"github.com/seu-repo/concierge-bot/internal/domain"
)

// DialogService is the hosted dialog service the chat relay forwards to.
type DialogService interface {
	// PostText sends one user utterance and returns the service's reply.
	PostText(ctx context.Context, userID, text string) (string, error)
}

// SMSSender delivers a text message to a phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// Cache is a small key/value store with expiry.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	// SetNX stores value only when key is absent and reports whether it did.
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}

// FulfillmentService answers one code hook invocation.
type FulfillmentService interface {
	Fulfill(ctx context.Context, req *domain.IntentRequest) (*domain.Response, error)
}

// ChatService relays a chat envelope to the dialog service.
type ChatService interface {
	Relay(ctx context.Context, userID string, env *domain.ChatEnvelope) (*domain.ChatEnvelope, error)
}
