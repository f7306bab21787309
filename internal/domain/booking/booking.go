// Package booking holds the reservation aggregate, its state machine and the
// read-side helpers of the booking core.
package booking

import (
	"time"

	"github.com/shareit-platform/service-sharing/internal/apperror"
)

// Booking is the aggregate root for a reservation of an item over a time
// window. The item and booker are held as explicit foreign keys; callers
// fetch the related entities through their repositories before use.
type Booking struct {
	id       int64
	start    time.Time
	end      time.Time
	itemID   int64
	bookerID int64
	status   Status
}

// New creates a booking in WAITING status after validating the time window
// against now. The checks run in a fixed order and the first failure wins.
func New(itemID, bookerID int64, start, end, now time.Time) (*Booking, error) {
	if end.Before(now) {
		return nil, apperror.NewValidationError("booking end time is missing or in the past")
	}
	if start.Before(now) {
		return nil, apperror.NewValidationError("booking start time is missing or in the past")
	}
	if start.Equal(end) {
		return nil, apperror.NewValidationError("booking start time must not equal its end time")
	}
	if end.Before(start) {
		return nil, apperror.NewValidationError("booking start time must not be after its end time")
	}

	return &Booking{
		start:    start,
		end:      end,
		itemID:   itemID,
		bookerID: bookerID,
		status:   StatusWaiting,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(id int64, start, end time.Time, itemID, bookerID int64, status Status) *Booking {
	return &Booking{
		id:       id,
		start:    start,
		end:      end,
		itemID:   itemID,
		bookerID: bookerID,
		status:   status,
	}
}

// ID returns the booking's unique identifier, zero until persisted.
func (b *Booking) ID() int64 { return b.id }

// Start returns the reservation window's start.
func (b *Booking) Start() time.Time { return b.start }

// End returns the reservation window's end.
func (b *Booking) End() time.Time { return b.end }

// ItemID returns the reserved item's id.
func (b *Booking) ItemID() int64 { return b.itemID }

// BookerID returns the requesting user's id.
func (b *Booking) BookerID() int64 { return b.bookerID }

// Status returns the current approval status.
func (b *Booking) Status() Status { return b.status }

// IsBookedBy reports whether the given user is the booker.
func (b *Booking) IsBookedBy(userID int64) bool {
	return b.bookerID == userID
}

// Resolve applies the owner's decision, moving the booking to APPROVED or
// REJECTED. Re-resolving an APPROVED booking fails; a REJECTED booking is
// deliberately left unguarded and may still be approved.
func (b *Booking) Resolve(approved bool) error {
	if b.status == StatusApproved {
		return apperror.NewValidationError("booking has already been approved")
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

// StartsBefore reports whether the booking's start strictly precedes t.
func (b *Booking) StartsBefore(t time.Time) bool {
	return b.start.Before(t)
}

// StartsAfter reports whether the booking's start strictly follows t.
func (b *Booking) StartsAfter(t time.Time) bool {
	return b.start.After(t)
}
