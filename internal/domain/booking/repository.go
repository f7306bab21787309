package booking

import (
	"context"
	"time"

	"github.com/shareit-platform/service-sharing/internal/pagination"
)

// Repository defines the persistence contract for bookings. The booker-side
// and owner-side listing queries mirror each other; owner-side queries match
// on the reserved item's owner. Unless stated otherwise, results are ordered
// by start descending.
type Repository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// Save persists a new booking and returns it with its assigned id.
	Save(ctx context.Context, b *Booking) (*Booking, error)

	// Update persists changes to an existing booking.
	Update(ctx context.Context, b *Booking) error

	// FindByBooker retrieves every booking made by the user.
	FindByBooker(ctx context.Context, bookerID int64, pg pagination.Page) ([]*Booking, error)

	// FindCurrentByBooker retrieves the user's bookings whose window contains
	// now. Ordered by id ascending.
	FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, pg pagination.Page) ([]*Booking, error)

	// FindPastByBooker retrieves the user's bookings ending before now.
	FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, pg pagination.Page) ([]*Booking, error)

	// FindFutureByBooker retrieves the user's bookings starting after now.
	FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, pg pagination.Page) ([]*Booking, error)

	// FindByBookerAndStatus retrieves the user's bookings in the given status.
	FindByBookerAndStatus(ctx context.Context, bookerID int64, status Status, pg pagination.Page) ([]*Booking, error)

	// FindByOwner retrieves every booking of the owner's items.
	FindByOwner(ctx context.Context, ownerID int64, pg pagination.Page) ([]*Booking, error)

	// FindCurrentByOwner retrieves bookings of the owner's items whose window
	// contains now.
	FindCurrentByOwner(ctx context.Context, ownerID int64, now time.Time, pg pagination.Page) ([]*Booking, error)

	// FindPastByOwner retrieves bookings of the owner's items ending before now.
	FindPastByOwner(ctx context.Context, ownerID int64, now time.Time, pg pagination.Page) ([]*Booking, error)

	// FindFutureByOwner retrieves bookings of the owner's items starting after
	// now.
	FindFutureByOwner(ctx context.Context, ownerID int64, now time.Time, pg pagination.Page) ([]*Booking, error)

	// FindByOwnerAndStatus retrieves bookings of the owner's items in the
	// given status.
	FindByOwnerAndStatus(ctx context.Context, ownerID int64, status Status, pg pagination.Page) ([]*Booking, error)

	// FindByItemExcludingStatus retrieves an item's bookings not in the given
	// status, ordered by start ascending. Feeds the last/next partition.
	FindByItemExcludingStatus(ctx context.Context, itemID int64, excluded Status) ([]*Booking, error)

	// FindFinishedByItemAndBooker retrieves the user's bookings of the item
	// that ended before now. Feeds the comment-eligibility check.
	FindFinishedByItemAndBooker(ctx context.Context, itemID, bookerID int64, now time.Time) ([]*Booking, error)
}
