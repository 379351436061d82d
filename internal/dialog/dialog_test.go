package dialog

import (
	"time"

	"github.com/seu-repo/concierge-bot/internal/domain"
)

// testOptions pins the clock to midday 2026-10-17 in New York.
func testOptions() Options {
	loc, _ := time.LoadLocation(DefaultTimezone)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, loc)
	return Options{
		Location: loc,
		Now:      func() time.Time { return now },
		Price:    PricePerChar(5),
	}
}

func slotsOf(kv ...string) domain.Slots {
	s := domain.Slots{}
	for i := 0; i+1 < len(kv); i += 2 {
		s[kv[i]] = domain.StringPtr(kv[i+1])
	}
	return s
}

func request(source domain.InvocationSource, intent string, slots domain.Slots) *domain.IntentRequest {
	return &domain.IntentRequest{
		InvocationSource:  source,
		UserID:            "user-1",
		CurrentIntent:     domain.CurrentIntent{Name: intent, Slots: slots},
		SessionAttributes: map[string]string{"channel": "web"},
	}
}
