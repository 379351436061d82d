package dialog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-repo/concierge-bot/internal/domain"
)

func TestRouter_UnknownIntent(t *testing.T) {
	r := DefaultRouter(testOptions())

	res, err := r.Route(request(domain.InvocationDialogCodeHook, "BookHotel", nil))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedIntent))
	assert.Contains(t, err.Error(), "BookHotel")
	assert.Nil(t, res.Response)
}

func TestRouter_DispatchesToOwnHandler(t *testing.T) {
	sentinel := func(name string) IntentHandler {
		return HandlerFunc(func(req *domain.IntentRequest) Result {
			return Result{Response: Close(nil, domain.FulfillmentStateFulfilled, domain.PlainText(name))}
		})
	}
	names := []string{IntentOrderFlowers, IntentDiningSuggestions, IntentGreeting, IntentThankYou}
	handlers := make(map[string]IntentHandler, len(names))
	for _, n := range names {
		handlers[n] = sentinel("handled-by-" + n)
	}
	r := NewRouter(handlers)

	for _, n := range names {
		res, err := r.Route(request(domain.InvocationDialogCodeHook, n, nil))
		require.NoError(t, err)
		assert.Equal(t, "handled-by-"+n, res.Response.DialogAction.Message.Content)
	}
}

func TestRouter_GreetingAndThanksIgnoreSource(t *testing.T) {
	r := DefaultRouter(testOptions())

	for _, source := range []domain.InvocationSource{domain.InvocationDialogCodeHook, domain.InvocationFulfillmentCodeHook} {
		res, err := r.Route(request(source, IntentGreeting, nil))
		require.NoError(t, err)
		assert.Equal(t, GreetingMessage, res.Response.DialogAction.Message.Content)

		res, err = r.Route(request(source, IntentThankYou, nil))
		require.NoError(t, err)
		assert.Equal(t, ThankYouMessage, res.Response.DialogAction.Message.Content)
	}
}

func TestRouter_Intents(t *testing.T) {
	r := DefaultRouter(Options{})

	assert.Equal(t, []string{IntentDiningSuggestions, IntentGreeting, IntentThankYou, IntentOrderFlowers}, r.Intents())
}

func TestRouter_FlowerScenario(t *testing.T) {
	r := DefaultRouter(testOptions())
	slots := slotsOf(SlotFlowerType, "roses", SlotPickupDate, "2999-01-01", SlotPickupTime, "14:00")

	res, err := r.Route(request(domain.InvocationDialogCodeHook, IntentOrderFlowers, slots))
	require.NoError(t, err)
	assert.Equal(t, domain.DialogActionDelegate, res.Response.DialogAction.Type)
	assert.Equal(t, "25", res.Response.SessionAttributes[AttrPrice])

	res, err = r.Route(request(domain.InvocationFulfillmentCodeHook, IntentOrderFlowers, slots))
	require.NoError(t, err)
	assert.Equal(t, domain.DialogActionClose, res.Response.DialogAction.Type)
	assert.Equal(t, "Thanks, your order for roses has been placed and will be ready for pickup by 14:00 on 2999-01-01",
		res.Response.DialogAction.Message.Content)
}
