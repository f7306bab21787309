package booking

import "fmt"

// StateFilter selects which temporal or status slice of a user's bookings a
// listing query returns.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterRejected StateFilter = "REJECTED"
)

var knownFilters = map[StateFilter]struct{}{
	FilterAll:      {},
	FilterCurrent:  {},
	FilterPast:     {},
	FilterFuture:   {},
	FilterWaiting:  {},
	FilterRejected: {},
}

// IsValid returns true if the filter is a recognized state filter.
func (f StateFilter) IsValid() bool {
	_, exists := knownFilters[f]
	return exists
}

// ParseStateFilter converts a string to a StateFilter, returning an error if
// the value is not one of the six known filters.
func ParseStateFilter(s string) (StateFilter, error) {
	filter := StateFilter(s)
	if !filter.IsValid() {
		return "", fmt.Errorf("unknown state filter: %s", s)
	}
	return filter, nil
}
