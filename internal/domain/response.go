package domain

type DialogActionType string

const (
	DialogActionElicitSlot DialogActionType = "ElicitSlot"
	DialogActionDelegate   DialogActionType = "Delegate"
	DialogActionClose      DialogActionType = "Close"
)

type FulfillmentState string

const (
	FulfillmentStateFulfilled FulfillmentState = "Fulfilled"
	FulfillmentStateFailed    FulfillmentState = "Failed"
)

const ContentTypePlainText = "PlainText"

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

func PlainText(content string) Message {
	return Message{ContentType: ContentTypePlainText, Content: content}
}

// DialogAction carries exactly one of the three response shapes, selected by Type.
type DialogAction struct {
	Type             DialogActionType `json:"type"`
	IntentName       string           `json:"intentName,omitempty"`
	Slots            Slots            `json:"slots,omitempty"`
	SlotToElicit     string           `json:"slotToElicit,omitempty"`
	FulfillmentState FulfillmentState `json:"fulfillmentState,omitempty"`
	Message          *Message         `json:"message,omitempty"`
}

type Response struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}
