package datekey

import "strings"

// Slot is a coarse time-of-day bucket used by the agenda view.
type Slot string

const (
	Morning   Slot = "morning"
	Afternoon Slot = "afternoon"
	Evening   Slot = "evening"
)

// Slots returns the buckets in display order.
func Slots() []Slot {
	return []Slot{Morning, Afternoon, Evening}
}

var (
	eveningTokens   = []string{"pm", "evening", "night", "17:", "18:", "19:"}
	afternoonTokens = []string{"12:", "13:", "14:", "afternoon"}
)

// SlotFor classifies a free-form time label into a bucket. This is a
// substring heuristic, not a time parser: labels like "7:30 AM", "all-day",
// or an hour range are display text first and a placement hint second.
// Anything that matches no token lands in the morning bucket, including
// empty and all-day labels. Agenda placement depends on this exact
// behavior, so keep the token lists and the fallthrough order stable.
func SlotFor(label string) Slot {
	s := strings.ToLower(label)
	for _, tok := range eveningTokens {
		if strings.Contains(s, tok) {
			return Evening
		}
	}
	for _, tok := range afternoonTokens {
		if strings.Contains(s, tok) {
			return Afternoon
		}
	}
	return Morning
}

// SlotNamed maps an explicitly declared slot name (as routines carry) to a
// Slot, defaulting to Morning for anything unrecognized.
func SlotNamed(raw string) Slot {
	switch Slot(strings.ToLower(strings.TrimSpace(raw))) {
	case Afternoon:
		return Afternoon
	case Evening:
		return Evening
	default:
		return Morning
	}
}
