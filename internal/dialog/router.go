package dialog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/seu-repo/concierge-bot/internal/domain"
)

const (
	IntentOrderFlowers      = "OrderFlowers"
	IntentDiningSuggestions = "MakeDiningSuggestions"
	IntentGreeting          = "MakeGreeting"
	IntentThankYou          = "MakeThankYou"
)

const (
	GreetingMessage = "Hey there, how can I help you?"
	ThankYouMessage = "Thanks for coming!"
)

var ErrUnsupportedIntent = errors.New("intent not supported")

// Router dispatches requests by intent name. It is read-only after
// construction and safe for concurrent use.
type Router struct {
	handlers map[string]IntentHandler
}

func NewRouter(handlers map[string]IntentHandler) *Router {
	r := &Router{handlers: make(map[string]IntentHandler, len(handlers))}
	for name, h := range handlers {
		r.handlers[name] = h
	}
	return r
}

// DefaultHandlers returns the handler table for the bot's four intents.
func DefaultHandlers(opts Options) map[string]IntentHandler {
	opts = opts.withDefaults()
	return map[string]IntentHandler{
		IntentOrderFlowers:      Resolve(NewOrderFlowers(opts)),
		IntentDiningSuggestions: Resolve(NewDiningSuggestions()),
		IntentGreeting:          CloseWith(GreetingMessage),
		IntentThankYou:          CloseWith(ThankYouMessage),
	}
}

func DefaultRouter(opts Options) *Router {
	return NewRouter(DefaultHandlers(opts))
}

// Route hands req to the handler registered for its intent.
func (r *Router) Route(req *domain.IntentRequest) (Result, error) {
	h, ok := r.handlers[req.IntentName()]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedIntent, req.IntentName())
	}
	return h.Handle(req), nil
}

// Intents lists the registered intent names in sorted order.
func (r *Router) Intents() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
