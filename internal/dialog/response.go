package dialog

import "github.com/seu-repo/concierge-bot/internal/domain"

// ElicitSlot asks the host to re-prompt for a single slot. A nil message lets
// the host use the prompt configured on the bot model.
func ElicitSlot(attrs map[string]string, intentName string, slots domain.Slots, slotToElicit string, message *domain.Message) *domain.Response {
	return &domain.Response{
		SessionAttributes: attrs,
		DialogAction: domain.DialogAction{
			Type:         domain.DialogActionElicitSlot,
			IntentName:   intentName,
			Slots:        slots,
			SlotToElicit: slotToElicit,
			Message:      message,
		},
	}
}

// Delegate hands the choice of the next turn back to the host.
func Delegate(attrs map[string]string, slots domain.Slots) *domain.Response {
	return &domain.Response{
		SessionAttributes: attrs,
		DialogAction: domain.DialogAction{
			Type:  domain.DialogActionDelegate,
			Slots: slots,
		},
	}
}

// Close ends the conversation. It always carries a state and a message.
func Close(attrs map[string]string, state domain.FulfillmentState, message domain.Message) *domain.Response {
	return &domain.Response{
		SessionAttributes: attrs,
		DialogAction: domain.DialogAction{
			Type:             domain.DialogActionClose,
			FulfillmentState: state,
			Message:          &message,
		},
	}
}
