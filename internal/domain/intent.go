package domain

type InvocationSource string

const (
	InvocationDialogCodeHook      InvocationSource = "DialogCodeHook"
	InvocationFulfillmentCodeHook InvocationSource = "FulfillmentCodeHook"
)

// Slots maps a slot name to its collected value. A nil value means the
// slot has not been collected yet.
type Slots map[string]*string

// Value returns the slot value and whether it has been collected.
func (s Slots) Value(name string) (string, bool) {
	v, ok := s[name]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// Text returns the slot value or an empty string when absent.
func (s Slots) Text(name string) string {
	v, _ := s.Value(name)
	return v
}

// Clone returns a shallow copy; slot values themselves are never mutated.
func (s Slots) Clone() Slots {
	out := make(Slots, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// StringPtr is a convenience for building slot maps.
func StringPtr(s string) *string {
	return &s
}

type CurrentIntent struct {
	Name               string `json:"name"`
	Slots              Slots  `json:"slots"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

type Bot struct {
	Name    string `json:"name"`
	Alias   string `json:"alias,omitempty"`
	Version string `json:"version,omitempty"`
}

// IntentRequest is the code hook payload delivered by the dialog host.
type IntentRequest struct {
	MessageVersion    string            `json:"messageVersion,omitempty"`
	InvocationSource  InvocationSource  `json:"invocationSource"`
	UserID            string            `json:"userId,omitempty"`
	InputTranscript   string            `json:"inputTranscript,omitempty"`
	OutputDialogMode  string            `json:"outputDialogMode,omitempty"`
	Bot               Bot               `json:"bot"`
	CurrentIntent     CurrentIntent     `json:"currentIntent"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
}

func (r *IntentRequest) IntentName() string {
	return r.CurrentIntent.Name
}

// IsDialogTurn reports whether the host is still collecting slots.
func (r *IntentRequest) IsDialogTurn() bool {
	return r.InvocationSource == InvocationDialogCodeHook
}

// ValidationResult is the verdict of a per-intent checklist.
type ValidationResult struct {
	IsValid      bool     `json:"isValid"`
	ViolatedSlot string   `json:"violatedSlot,omitempty"`
	Message      *Message `json:"message,omitempty"`
}

func Valid() ValidationResult {
	return ValidationResult{IsValid: true}
}

// Invalid builds a failed verdict. An empty message leaves Message nil so the
// host falls back to the prompt configured on the bot model.
func Invalid(slot, message string) ValidationResult {
	res := ValidationResult{ViolatedSlot: slot}
	if message != "" {
		m := PlainText(message)
		res.Message = &m
	}
	return res
}
