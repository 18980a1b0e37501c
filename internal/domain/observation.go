package domain

// TimeLayout is the conventional format of Observation.Time.
// It sorts lexicographically in chronological order, which the
// per-hike listing relies on.
const TimeLayout = "2006-01-02 15:04"

// Observation is a field note recorded during a hike.
// It is owned by exactly one Hike and has no lifecycle of its own.
type Observation struct {
	ID      int64  `json:"id"`
	HikeID  int64  `json:"hikeId"`
	Title   string `json:"title"`
	Time    string `json:"time"`
	Comment string `json:"comment,omitempty"`
}
