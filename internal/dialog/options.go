package dialog

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/New_York"

// PriceFunc derives the quoted price for a flower order.
type PriceFunc func(flowerType string) int

// PricePerChar quotes rate units per character of the flower type name.
func PricePerChar(rate int) PriceFunc {
	return func(flowerType string) int {
		return rate * len(flowerType)
	}
}

// Options is the per-process configuration handed to the intent handlers.
// Date rules are evaluated in Location, never in the process timezone.
type Options struct {
	Location *time.Location
	Now      func() time.Time
	Price    PriceFunc
}

// DefaultOptions uses the America/New_York calendar, the wall clock and a
// price of 5 per character.
func DefaultOptions() Options {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	return Options{
		Location: loc,
		Now:      time.Now,
		Price:    PricePerChar(5),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Location == nil {
		o.Location = d.Location
	}
	if o.Now == nil {
		o.Now = d.Now
	}
	if o.Price == nil {
		o.Price = d.Price
	}
	return o
}

// today returns local midnight of the current date in o.Location.
func (o Options) today() time.Time {
	now := o.Now().In(o.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, o.Location)
}
