package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/seu-repo/concierge-bot/internal/domain"
	"github.com/seu-repo/concierge-bot/internal/infrastructure/circuitbreaker"
	"github.com/seu-repo/concierge-bot/internal/observability/telemetry"
	"github.com/seu-repo/concierge-bot/internal/ports"
	"github.com/seu-repo/concierge-bot/pkg/config"
)

var (
	ErrEmptyMessage      = errors.New("chat: message text is empty")
	ErrDialogUnavailable = errors.New("chat: dialog service unavailable")
)

const defaultTimeout = 10 * time.Second

// Service relays free text from the web chat to the hosted dialog service.
type Service struct {
	dialog  ports.DialogService
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
	log     *zap.Logger
}

func NewService(dialog ports.DialogService, timeout time.Duration, cb config.CircuitBreakerConfig, log *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		dialog:  dialog,
		breaker: circuitbreaker.New("dialog-service", cb, log),
		timeout: timeout,
		log:     log,
	}
}

// Relay forwards the first unstructured message in env and wraps the reply
// in the same envelope shape. An open breaker returns ErrDialogUnavailable.
func (s *Service) Relay(ctx context.Context, userID string, env *domain.ChatEnvelope) (*domain.ChatEnvelope, error) {
	var text string
	if env != nil {
		text = strings.TrimSpace(env.FirstText())
	}
	if text == "" {
		telemetry.ChatRelayTotal.WithLabelValues("empty").Inc()
		return nil, ErrEmptyMessage
	}

	ctx, span := telemetry.StartSpan(ctx, "chat.Relay")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", userID))

	start := time.Now()
	reply, err := s.post(ctx, userID, text)
	telemetry.ChatRelayLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if circuitbreaker.IsRejected(err) {
			telemetry.ChatRelayTotal.WithLabelValues("rejected").Inc()
			s.log.Warn("Dialog service rejected by circuit breaker", zap.String("user_id", userID))
			return nil, fmt.Errorf("%w: %v", ErrDialogUnavailable, err)
		}
		telemetry.ChatRelayTotal.WithLabelValues("error").Inc()
		s.log.Error("Dialog service call failed", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("chat: post text: %w", err)
	}

	telemetry.ChatRelayTotal.WithLabelValues("ok").Inc()
	return domain.NewChatReply(reply), nil
}

func (s *Service) post(ctx context.Context, userID, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return circuitbreaker.ExecuteWithResult(s.breaker, func() (string, error) {
		return s.dialog.PostText(ctx, userID, text)
	})
}

// Ping reports whether the breaker would let a call through.
func (s *Service) Ping(ctx context.Context) error {
	if circuitbreaker.IsOpen(s.breaker) {
		return ErrDialogUnavailable
	}
	return nil
}
