package fulfillment

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/seu-repo/concierge-bot/internal/adapter/queue"
	"github.com/seu-repo/concierge-bot/internal/dialog"
	"github.com/seu-repo/concierge-bot/internal/domain"
	"github.com/seu-repo/concierge-bot/internal/observability/telemetry"
)

const unsupportedLabel = "unsupported"

type Config struct {
	// Subject receives one DiningSummary per closed dining request.
	Subject        string
	PublishTimeout time.Duration
}

// Service is the entry point for code hook requests.
type Service struct {
	router *dialog.Router
	queue  queue.MessageQueue
	cfg    Config
	now    func() time.Time
	newID  func() string
	log    *zap.Logger
}

// NewService builds the fulfillment service. A nil queue disables summary
// publishing.
func NewService(router *dialog.Router, mq queue.MessageQueue, cfg Config, log *zap.Logger) *Service {
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 2 * time.Second
	}
	return &Service{
		router: router,
		queue:  mq,
		cfg:    cfg,
		now:    time.Now,
		newID:  uuid.NewString,
		log:    log,
	}
}

// Fulfill routes req to its intent handler and returns the single response
// for the host. Unsupported intents return dialog.ErrUnsupportedIntent.
func (s *Service) Fulfill(ctx context.Context, req *domain.IntentRequest) (*domain.Response, error) {
	ctx, span := telemetry.StartSpan(ctx, "fulfillment.Fulfill")
	defer span.End()

	intent := req.IntentName()
	span.SetAttributes(
		attribute.String("intent", intent),
		attribute.String("invocation_source", string(req.InvocationSource)),
	)

	res, err := s.router.Route(req)
	if err != nil {
		telemetry.FulfillmentRequestsTotal.WithLabelValues(unsupportedLabel, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Warn("Unsupported intent",
			zap.String("intent", intent),
			zap.String("user_id", req.UserID),
			zap.String("bot", req.Bot.Name),
		)
		return nil, err
	}

	action := res.Response.DialogAction
	telemetry.FulfillmentRequestsTotal.WithLabelValues(intent, string(action.Type)).Inc()
	if action.Type == domain.DialogActionElicitSlot {
		telemetry.ValidationFailuresTotal.WithLabelValues(intent, action.SlotToElicit).Inc()
	}

	s.log.Debug("Code hook handled",
		zap.String("intent", intent),
		zap.String("source", string(req.InvocationSource)),
		zap.String("action", string(action.Type)),
		zap.String("user_id", req.UserID),
	)

	if res.Summary != nil {
		s.publishSummary(ctx, req, *res.Summary)
	}

	return res.Response, nil
}

// publishSummary hands the structured summary to the queue. Failures are
// logged; the host still gets its Close response.
func (s *Service) publishSummary(ctx context.Context, req *domain.IntentRequest, summary domain.DiningSummary) {
	if s.queue == nil || s.cfg.Subject == "" {
		return
	}

	summary.RequestID = s.newID()
	summary.UserID = req.UserID
	summary.CreatedAt = s.now().UTC()

	data, err := json.Marshal(summary)
	if err != nil {
		telemetry.SummariesPublishedTotal.WithLabelValues("error").Inc()
		s.log.Error("Failed to encode dining summary", zap.Error(err))
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PublishTimeout)
	defer cancel()

	if err := s.queue.Publish(pubCtx, s.cfg.Subject, data); err != nil {
		telemetry.SummariesPublishedTotal.WithLabelValues("error").Inc()
		s.log.Error("Failed to publish dining summary",
			zap.String("subject", s.cfg.Subject),
			zap.String("request_id", summary.RequestID),
			zap.Error(err),
		)
		return
	}

	telemetry.SummariesPublishedTotal.WithLabelValues("ok").Inc()
	s.log.Info("Dining summary published",
		zap.String("subject", s.cfg.Subject),
		zap.String("request_id", summary.RequestID),
	)
}

// IsUnsupported reports whether err came from an unknown intent name.
func IsUnsupported(err error) bool {
	return errors.Is(err, dialog.ErrUnsupportedIntent)
}

func (s *Service) Intents() []string {
	return s.router.Intents()
}
