package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/concierge-bot/internal/adapter/queue"
	"github.com/seu-repo/concierge-bot/internal/domain"
	"github.com/seu-repo/concierge-bot/internal/observability/telemetry"
	"github.com/seu-repo/concierge-bot/internal/ports"
)

const claimPrefix = "dining-summary:"

// Claim values stored under claimPrefix+RequestID.
const (
	claimPending = "pending"
	claimSent    = "sent"
)

type Config struct {
	DedupeTTL   time.Duration
	SendTimeout time.Duration
}

// Service texts the diner once per published dining summary.
type Service struct {
	sms   ports.SMSSender
	cache ports.Cache
	cfg   Config
	log   *zap.Logger
}

func NewService(sms ports.SMSSender, cache ports.Cache, cfg Config, log *zap.Logger) *Service {
	if cfg.DedupeTTL <= 0 {
		cfg.DedupeTTL = 24 * time.Hour
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	return &Service{sms: sms, cache: cache, cfg: cfg, log: log}
}

// Start subscribes HandleSummary to subject.
func (s *Service) Start(mq queue.MessageQueue, subject string) error {
	if err := mq.Subscribe(subject, s.HandleSummary); err != nil {
		return fmt.Errorf("notify: subscribe %s: %w", subject, err)
	}
	s.log.Info("Notifier subscribed", zap.String("subject", subject))
	return nil
}

// HandleSummary is a queue.Handler. Malformed payloads and summaries without a
// phone number are dropped; only a failed send is returned as an error.
func (s *Service) HandleSummary(ctx context.Context, data []byte) error {
	var summary domain.DiningSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		telemetry.SMSSentTotal.WithLabelValues("malformed").Inc()
		s.log.Error("Dropping malformed dining summary", zap.Error(err))
		return nil
	}
	if summary.PhoneNumber == "" {
		telemetry.SMSSentTotal.WithLabelValues("skipped").Inc()
		s.log.Warn("Dining summary has no phone number", zap.String("request_id", summary.RequestID))
		return nil
	}

	key := claimPrefix + summary.RequestID
	dedupe := summary.RequestID != "" && s.cache != nil
	if dedupe {
		if state, err := s.cache.Get(ctx, key); err == nil && state == claimSent {
			telemetry.SMSSentTotal.WithLabelValues("duplicate").Inc()
			s.log.Info("Dining summary already sent", zap.String("request_id", summary.RequestID))
			return nil
		}

		claimed, err := s.cache.SetNX(ctx, key, claimPending, s.cfg.DedupeTTL)
		if err != nil {
			// Sending twice is better than not sending.
			s.log.Warn("Dedupe claim failed", zap.String("request_id", summary.RequestID), zap.Error(err))
		} else if !claimed {
			telemetry.SMSSentTotal.WithLabelValues("in_flight").Inc()
			s.log.Info("Dining summary is being handled elsewhere", zap.String("request_id", summary.RequestID))
			return nil
		}
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()

	if err := s.sms.SendSMS(sendCtx, summary.PhoneNumber, MessageBody(summary)); err != nil {
		telemetry.SMSSentTotal.WithLabelValues("error").Inc()
		if dedupe {
			if derr := s.cache.Delete(context.WithoutCancel(ctx), key); derr != nil {
				s.log.Warn("Failed to release dedupe claim", zap.String("key", key), zap.Error(derr))
			}
		}
		return fmt.Errorf("notify: send sms for %s: %w", summary.RequestID, err)
	}

	if dedupe {
		if err := s.cache.Set(context.WithoutCancel(ctx), key, claimSent, s.cfg.DedupeTTL); err != nil {
			s.log.Warn("Failed to mark dining summary as sent", zap.String("key", key), zap.Error(err))
		}
	}

	telemetry.SMSSentTotal.WithLabelValues("ok").Inc()
	s.log.Info("Suggestion SMS sent",
		zap.String("request_id", summary.RequestID),
		zap.String("user_id", summary.UserID),
	)
	return nil
}

func MessageBody(s domain.DiningSummary) string {
	return fmt.Sprintf("Your %s suggestions in %s for %s people at %s are on the way. Ref %s",
		s.Cuisine, s.Location, s.NumPeople, s.DiningTime, s.RequestID)
}
