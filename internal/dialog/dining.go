package dialog

import (
	"fmt"

	"github.com/seu-repo/concierge-bot/internal/domain"
)

const (
	SlotCuisine     = "Cuisine"
	SlotLocation    = "Location"
	SlotDiningTime  = "DiningTime"
	SlotNumPeople   = "NumPeople"
	SlotPhoneNumber = "PhoneNumber"
)

var (
	cuisines  = []string{"mexican", "thai", "chinese", "italian", "indian"}
	locations = []string{"manhattan"}
)

// DiningSuggestions collects a dining request. Party size and phone number are
// collected by the host but not validated here.
type DiningSuggestions struct {
	rules []rule
}

func NewDiningSuggestions() *DiningSuggestions {
	return &DiningSuggestions{
		rules: []rule{
			oneOf(SlotCuisine, cuisines,
				"We do not have suggestions for %s, would you like a Cuisine?  Our choices are Mexican, Indian, Thai, Chinese and Italian"),
			oneOf(SlotLocation, locations,
				"We do not have suggestions for %s. We currently only have suggestions for Manhattan."),
			hourWithin(SlotDiningTime, 17, 20,
				"Most dining hours are from five p m. to eight p m. Can you specify a time during this range?"),
		},
	}
}

func (d *DiningSuggestions) Validate(slots domain.Slots) domain.ValidationResult {
	return checklist(slots, d.rules...)
}

func (d *DiningSuggestions) Attributes(domain.Slots) map[string]string {
	return nil
}

func (d *DiningSuggestions) Fulfill(slots domain.Slots) Fulfillment {
	summary := &domain.DiningSummary{
		Location:    slots.Text(SlotLocation),
		Cuisine:     slots.Text(SlotCuisine),
		NumPeople:   slots.Text(SlotNumPeople),
		DiningTime:  slots.Text(SlotDiningTime),
		PhoneNumber: slots.Text(SlotPhoneNumber),
	}
	return Fulfillment{
		Message: fmt.Sprintf("Thanks an sms of suggestions for %s food in %s at %s for %s people would be sent to %s.",
			summary.Cuisine, summary.Location, summary.DiningTime, summary.NumPeople, summary.PhoneNumber),
		Summary: summary,
	}
}
