package booking

import "fmt"

// Status represents the approval state of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var knownStatuses = map[Status]struct{}{
	StatusWaiting:  {},
	StatusApproved: {},
	StatusRejected: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s Status) IsValid() bool {
	_, exists := knownStatuses[s]
	return exists
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string to a Status, returning an error if invalid.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}
