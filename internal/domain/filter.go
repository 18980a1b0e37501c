package domain

import (
	"strconv"
	"strings"
)

// HikeFilter carries the raw search and filter inputs typed by the user.
// Every field is optional: a blank value disables its predicate.
// Values are kept as text so that the caller can pass form input unchanged;
// MinDistance that does not parse as a number is ignored rather than rejected.
type HikeFilter struct {
	// Search matches against the hike name, case-insensitively.
	Search string
	// Location matches against the hike location, case-insensitively.
	Location string
	// MinDistance keeps hikes whose distance is at least this value.
	MinDistance string
	// Date keeps hikes whose stored date equals this value exactly.
	Date string
}

// IsEmpty reports whether no predicate is active.
func (f HikeFilter) IsEmpty() bool {
	_, minOK := f.minDistance()
	return strings.TrimSpace(f.Search) == "" &&
		strings.TrimSpace(f.Location) == "" &&
		!minOK &&
		strings.TrimSpace(f.Date) == ""
}

// Apply returns the hikes matching every active predicate, in input order.
// It never modifies hikes and always returns a non-nil slice.
func (f HikeFilter) Apply(hikes []Hike) []Hike {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	location := strings.ToLower(strings.TrimSpace(f.Location))
	minDistance, minOK := f.minDistance()
	date := strings.TrimSpace(f.Date)

	out := make([]Hike, 0, len(hikes))
	for _, h := range hikes {
		if search != "" && !strings.Contains(strings.ToLower(h.Name), search) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(h.Location), location) {
			continue
		}
		if minOK && h.Distance < minDistance {
			continue
		}
		if date != "" && h.Date != date {
			continue
		}
		out = append(out, h)
	}
	return out
}

// minDistance parses MinDistance. The second result is false when the value
// is blank or not a number, in which case the predicate is skipped.
func (f HikeFilter) minDistance() (float64, bool) {
	s := strings.TrimSpace(f.MinDistance)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
