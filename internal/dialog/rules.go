package dialog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/seu-repo/concierge-bot/internal/domain"
)

const dateLayout = "2006-01-02"

// rule inspects one slot. It reports failed=false when the slot is absent or
// acceptable.
type rule func(slots domain.Slots) (res domain.ValidationResult, failed bool)

// checklist evaluates rules in order and stops at the first failure.
func checklist(slots domain.Slots, rules ...rule) domain.ValidationResult {
	for _, r := range rules {
		if res, failed := r(slots); failed {
			return res
		}
	}
	return domain.Valid()
}

// oneOf accepts values in allowed, compared case-insensitively. format gets
// the rejected value as its only argument.
func oneOf(slot string, allowed []string, format string) rule {
	return func(slots domain.Slots) (domain.ValidationResult, bool) {
		v, ok := slots.Value(slot)
		if !ok {
			return domain.ValidationResult{}, false
		}
		lower := strings.ToLower(v)
		for _, a := range allowed {
			if lower == a {
				return domain.ValidationResult{}, false
			}
		}
		return domain.Invalid(slot, fmt.Sprintf(format, v)), true
	}
}

// futureDate accepts YYYY-MM-DD dates strictly after today in opts.Location.
func futureDate(slot string, opts Options, unparsable, notFuture string) rule {
	return func(slots domain.Slots) (domain.ValidationResult, bool) {
		v, ok := slots.Value(slot)
		if !ok {
			return domain.ValidationResult{}, false
		}
		date, err := time.ParseInLocation(dateLayout, v, opts.Location)
		if err != nil {
			return domain.Invalid(slot, unparsable), true
		}
		if !date.After(opts.today()) {
			return domain.Invalid(slot, notFuture), true
		}
		return domain.ValidationResult{}, false
	}
}

// hourWithin accepts HH:MM values whose hour lies in [minHour, maxHour].
// Malformed values fail without a message so the host re-asks with its own prompt.
func hourWithin(slot string, minHour, maxHour int, outside string) rule {
	return func(slots domain.Slots) (domain.ValidationResult, bool) {
		v, ok := slots.Value(slot)
		if !ok {
			return domain.ValidationResult{}, false
		}
		hour, _, ok := parseClock(v)
		if !ok {
			return domain.Invalid(slot, ""), true
		}
		if hour < minHour || hour > maxHour {
			return domain.Invalid(slot, outside), true
		}
		return domain.ValidationResult{}, false
	}
}

// parseClock splits a five character "HH:MM" value. Only the digits are
// checked; the minute is not range checked.
func parseClock(v string) (hour, minute int, ok bool) {
	if len(v) != 5 {
		return 0, 0, false
	}
	h, m, found := strings.Cut(v, ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(m)
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}
