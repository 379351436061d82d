package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-repo/concierge-bot/internal/domain"
)

func TestResolve_DialogTurnValidDelegatesWithPrice(t *testing.T) {
	h := Resolve(NewOrderFlowers(testOptions()))
	slots := slotsOf(SlotFlowerType, "roses", SlotPickupDate, "2999-01-01", SlotPickupTime, "14:00")
	req := request(domain.InvocationDialogCodeHook, IntentOrderFlowers, slots)

	res := h.Handle(req)

	require.NotNil(t, res.Response)
	action := res.Response.DialogAction
	assert.Equal(t, domain.DialogActionDelegate, action.Type)
	assert.Equal(t, slots, action.Slots)
	assert.Equal(t, "25", res.Response.SessionAttributes[AttrPrice])
	assert.Equal(t, "web", res.Response.SessionAttributes["channel"])
	assert.Nil(t, res.Summary)
	_, mutated := req.SessionAttributes[AttrPrice]
	assert.False(t, mutated, "request attributes must not be modified")
}

func TestResolve_DialogTurnNilAttributes(t *testing.T) {
	h := Resolve(NewOrderFlowers(testOptions()))
	req := request(domain.InvocationDialogCodeHook, IntentOrderFlowers, domain.Slots{})
	req.SessionAttributes = nil

	res := h.Handle(req)

	assert.Equal(t, domain.DialogActionDelegate, res.Response.DialogAction.Type)
	assert.NotNil(t, res.Response.SessionAttributes)
	assert.Empty(t, res.Response.SessionAttributes)
}

func TestResolve_DialogTurnInvalidElicits(t *testing.T) {
	h := Resolve(NewOrderFlowers(testOptions()))
	slots := slotsOf(SlotFlowerType, "roses", SlotPickupDate, "2999-01-01", SlotPickupTime, "930")
	req := request(domain.InvocationDialogCodeHook, IntentOrderFlowers, slots)

	res := h.Handle(req)

	action := res.Response.DialogAction
	assert.Equal(t, domain.DialogActionElicitSlot, action.Type)
	assert.Equal(t, IntentOrderFlowers, action.IntentName)
	assert.Equal(t, SlotPickupTime, action.SlotToElicit)
	assert.Nil(t, action.Message, "malformed time defers to the configured prompt")

	require.Contains(t, action.Slots, SlotPickupTime)
	assert.Nil(t, action.Slots[SlotPickupTime])
	assert.Equal(t, "roses", action.Slots.Text(SlotFlowerType))
	assert.Equal(t, "2999-01-01", action.Slots.Text(SlotPickupDate))
	assert.Len(t, action.Slots, 3)

	assert.Equal(t, "930", req.CurrentIntent.Slots.Text(SlotPickupTime), "request slots must not be modified")
	assert.Equal(t, req.SessionAttributes, res.Response.SessionAttributes)
}

func TestResolve_DialogTurnInvalidCarriesMessage(t *testing.T) {
	h := Resolve(NewDiningSuggestions())
	req := request(domain.InvocationDialogCodeHook, IntentDiningSuggestions, slotsOf(SlotLocation, "Boston"))

	action := h.Handle(req).Response.DialogAction

	assert.Equal(t, SlotLocation, action.SlotToElicit)
	require.NotNil(t, action.Message)
	assert.Contains(t, action.Message.Content, "Boston")
}

func TestResolve_FulfillmentTurnClosesWithoutValidation(t *testing.T) {
	h := Resolve(NewOrderFlowers(testOptions()))
	slots := slotsOf(SlotFlowerType, "roses", SlotPickupDate, "2999-01-01", SlotPickupTime, "14:00")

	res := h.Handle(request(domain.InvocationFulfillmentCodeHook, IntentOrderFlowers, slots))

	action := res.Response.DialogAction
	assert.Equal(t, domain.DialogActionClose, action.Type)
	assert.Equal(t, domain.FulfillmentStateFulfilled, action.FulfillmentState)
	require.NotNil(t, action.Message)
	assert.Equal(t, "Thanks, your order for roses has been placed and will be ready for pickup by 14:00 on 2999-01-01", action.Message.Content)

	// Invalid values are not re-checked on the fulfillment turn.
	invalid := slotsOf(SlotFlowerType, "weeds", SlotPickupDate, "yesterday", SlotPickupTime, "3am")
	res = h.Handle(request(domain.InvocationFulfillmentCodeHook, IntentOrderFlowers, invalid))
	assert.Equal(t, domain.DialogActionClose, res.Response.DialogAction.Type)
	assert.Equal(t, domain.FulfillmentStateFulfilled, res.Response.DialogAction.FulfillmentState)
}

func TestResolve_FulfillmentTurnReturnsSummary(t *testing.T) {
	h := Resolve(NewDiningSuggestions())
	slots := slotsOf(SlotCuisine, "Indian", SlotLocation, "Manhattan", SlotDiningTime, "18:00",
		SlotNumPeople, "2", SlotPhoneNumber, "2125550100")

	res := h.Handle(request(domain.InvocationFulfillmentCodeHook, IntentDiningSuggestions, slots))

	require.NotNil(t, res.Summary)
	assert.Equal(t, "2125550100", res.Summary.PhoneNumber)
	assert.Equal(t, domain.DialogActionClose, res.Response.DialogAction.Type)
}

func TestCloseWith(t *testing.T) {
	h := CloseWith("bye")

	for _, source := range []domain.InvocationSource{domain.InvocationDialogCodeHook, domain.InvocationFulfillmentCodeHook} {
		res := h.Handle(request(source, "Anything", nil))
		assert.Equal(t, domain.DialogActionClose, res.Response.DialogAction.Type)
		assert.Equal(t, domain.FulfillmentStateFulfilled, res.Response.DialogAction.FulfillmentState)
		assert.Equal(t, "bye", res.Response.DialogAction.Message.Content)
	}
}
