package dialog

import (
	"fmt"
	"strconv"

	"github.com/seu-repo/concierge-bot/internal/domain"
)

const (
	SlotFlowerType = "FlowerType"
	SlotPickupDate = "PickupDate"
	SlotPickupTime = "PickupTime"

	// AttrPrice is the session attribute used by the bot's prompts to quote a price.
	AttrPrice = "Price"
)

var flowerTypes = []string{"lilies", "roses", "tulips"}

// OrderFlowers validates and fulfills flower pickup orders.
type OrderFlowers struct {
	price PriceFunc
	rules []rule
}

func NewOrderFlowers(opts Options) *OrderFlowers {
	opts = opts.withDefaults()
	return &OrderFlowers{
		price: opts.Price,
		rules: []rule{
			oneOf(SlotFlowerType, flowerTypes,
				"We do not have %s, would you like a different type of flower?  Our most popular flowers are roses"),
			futureDate(SlotPickupDate, opts,
				"I did not understand that, what date would you like to pick the flowers up?",
				"You can pick up the flowers from tomorrow onwards.  What day would you like to pick them up?"),
			hourWithin(SlotPickupTime, 10, 16,
				"Our business hours are from ten a m. to five p m. Can you specify a time during this range?"),
		},
	}
}

func (o *OrderFlowers) Validate(slots domain.Slots) domain.ValidationResult {
	return checklist(slots, o.rules...)
}

func (o *OrderFlowers) Attributes(slots domain.Slots) map[string]string {
	flower, ok := slots.Value(SlotFlowerType)
	if !ok {
		return nil
	}
	return map[string]string{AttrPrice: strconv.Itoa(o.price(flower))}
}

func (o *OrderFlowers) Fulfill(slots domain.Slots) Fulfillment {
	return Fulfillment{
		Message: fmt.Sprintf("Thanks, your order for %s has been placed and will be ready for pickup by %s on %s",
			slots.Text(SlotFlowerType), slots.Text(SlotPickupTime), slots.Text(SlotPickupDate)),
	}
}
