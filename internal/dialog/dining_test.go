package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-repo/concierge-bot/internal/domain"
)

func TestDiningSuggestions_Validate(t *testing.T) {
	d := NewDiningSuggestions()

	assert.True(t, d.Validate(domain.Slots{}).IsValid)
	assert.True(t, d.Validate(slotsOf(
		SlotCuisine, "THAI",
		SlotLocation, "Manhattan",
		SlotDiningTime, "19:30",
		SlotNumPeople, "not validated",
		SlotPhoneNumber, "123",
	)).IsValid)

	tests := []struct {
		name        string
		slots       domain.Slots
		wantSlot    string
		wantMessage string
	}{
		{
			name:        "cuisine",
			slots:       slotsOf(SlotCuisine, "french"),
			wantSlot:    SlotCuisine,
			wantMessage: "We do not have suggestions for french, would you like a Cuisine?  Our choices are Mexican, Indian, Thai, Chinese and Italian",
		},
		{
			name:        "location",
			slots:       slotsOf(SlotLocation, "Brooklyn"),
			wantSlot:    SlotLocation,
			wantMessage: "We do not have suggestions for Brooklyn. We currently only have suggestions for Manhattan.",
		},
		{
			name:        "too early",
			slots:       slotsOf(SlotDiningTime, "16:00"),
			wantSlot:    SlotDiningTime,
			wantMessage: "Most dining hours are from five p m. to eight p m. Can you specify a time during this range?",
		},
		{
			name:        "too late",
			slots:       slotsOf(SlotDiningTime, "21:00"),
			wantSlot:    SlotDiningTime,
			wantMessage: "Most dining hours are from five p m. to eight p m. Can you specify a time during this range?",
		},
		{name: "malformed time", slots: slotsOf(SlotDiningTime, "7pm"), wantSlot: SlotDiningTime},
		{
			name:     "cuisine checked before location",
			slots:    slotsOf(SlotLocation, "Queens", SlotCuisine, "greek"),
			wantSlot: SlotCuisine,
			wantMessage: "We do not have suggestions for greek, would you like a Cuisine?  " +
				"Our choices are Mexican, Indian, Thai, Chinese and Italian",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Validate(tt.slots)

			require.False(t, res.IsValid)
			assert.Equal(t, tt.wantSlot, res.ViolatedSlot)
			if tt.wantMessage == "" {
				assert.Nil(t, res.Message)
				return
			}
			require.NotNil(t, res.Message)
			assert.Equal(t, tt.wantMessage, res.Message.Content)
		})
	}
}

func TestDiningSuggestions_FulfillBuildsSummary(t *testing.T) {
	d := NewDiningSuggestions()

	f := d.Fulfill(slotsOf(
		SlotCuisine, "Thai",
		SlotLocation, "Manhattan",
		SlotDiningTime, "19:00",
		SlotNumPeople, "4",
		SlotPhoneNumber, "5555555555",
	))

	assert.Equal(t, "Thanks an sms of suggestions for Thai food in Manhattan at 19:00 for 4 people would be sent to 5555555555.", f.Message)
	require.NotNil(t, f.Summary)
	assert.Equal(t, domain.DiningSummary{
		Location:    "Manhattan",
		Cuisine:     "Thai",
		NumPeople:   "4",
		DiningTime:  "19:00",
		PhoneNumber: "5555555555",
	}, *f.Summary)
}
