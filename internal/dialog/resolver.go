package dialog

import "github.com/seu-repo/concierge-bot/internal/domain"

// Result is the outcome of handling one code hook request. Summary is only
// set when a dining suggestion request closes.
type Result struct {
	Response *domain.Response
	Summary  *domain.DiningSummary
}

// Fulfillment is what an intent produces on the final turn.
type Fulfillment struct {
	Message string
	Summary *domain.DiningSummary
}

// SlotIntent is implemented by intents that collect and validate slots.
type SlotIntent interface {
	// Validate runs the intent's ordered checklist over the collected slots.
	Validate(slots domain.Slots) domain.ValidationResult
	// Attributes derives session attributes after a valid dialog turn.
	Attributes(slots domain.Slots) map[string]string
	// Fulfill composes the confirmation for the fulfillment turn.
	Fulfill(slots domain.Slots) Fulfillment
}

// IntentHandler turns a request into exactly one response.
type IntentHandler interface {
	Handle(req *domain.IntentRequest) Result
}

// HandlerFunc adapts a function to IntentHandler.
type HandlerFunc func(req *domain.IntentRequest) Result

func (f HandlerFunc) Handle(req *domain.IntentRequest) Result {
	return f(req)
}

// Resolve wraps a SlotIntent in the elicit / delegate / close state machine.
func Resolve(intent SlotIntent) IntentHandler {
	return &resolver{intent: intent}
}

type resolver struct {
	intent SlotIntent
}

func (r *resolver) Handle(req *domain.IntentRequest) Result {
	slots := req.CurrentIntent.Slots

	if !req.IsDialogTurn() {
		f := r.intent.Fulfill(slots)
		return Result{
			Response: Close(req.SessionAttributes, domain.FulfillmentStateFulfilled, domain.PlainText(f.Message)),
			Summary:  f.Summary,
		}
	}

	verdict := r.intent.Validate(slots)
	if !verdict.IsValid {
		next := slots.Clone()
		next[verdict.ViolatedSlot] = nil
		return Result{
			Response: ElicitSlot(req.SessionAttributes, req.IntentName(), next, verdict.ViolatedSlot, verdict.Message),
		}
	}

	attrs := make(map[string]string, len(req.SessionAttributes)+1)
	for k, v := range req.SessionAttributes {
		attrs[k] = v
	}
	for k, v := range r.intent.Attributes(slots) {
		attrs[k] = v
	}
	return Result{Response: Delegate(attrs, slots)}
}

// CloseWith answers every turn with the same fulfilled message. Used by
// intents without slots.
func CloseWith(message string) IntentHandler {
	return HandlerFunc(func(req *domain.IntentRequest) Result {
		return Result{
			Response: Close(req.SessionAttributes, domain.FulfillmentStateFulfilled, domain.PlainText(message)),
		}
	})
}
