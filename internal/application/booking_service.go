package application

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-platform/service-sharing/internal/apperror"
	bookingDomain "github.com/shareit-platform/service-sharing/internal/domain/booking"
	itemDomain "github.com/shareit-platform/service-sharing/internal/domain/item"
	userDomain "github.com/shareit-platform/service-sharing/internal/domain/user"
	"github.com/shareit-platform/service-sharing/internal/events"
	"github.com/shareit-platform/service-sharing/internal/metrics"
	"github.com/shareit-platform/service-sharing/internal/pagination"
)

// CreateBookingRequest holds the data needed to request a booking.
type CreateBookingRequest struct {
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
	ItemID int64     `json:"itemId" binding:"required"`
	// BookerID and Status are accepted for wire compatibility and ignored:
	// identity comes from the X-Sharer-User-Id header and new bookings always
	// start WAITING.
	BookerID *int64  `json:"bookerId"`
	Status   *string `json:"status"`
}

// BookingDTO is the response representation of a booking, with the item and
// booker expanded.
type BookingDTO struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Booker UserDTO   `json:"booker"`
	Item   ItemDTO   `json:"item"`
}

// EventPublisher is the port through which lifecycle events leave the service.
type EventPublisher interface {
	Publish(ctx context.Context, topic, eventType, key string, data interface{}) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, string, string, interface{}) error { return nil }

// NopPublisher returns a publisher that drops every event, for deployments
// without a broker.
func NopPublisher() EventPublisher { return nopPublisher{} }

// bookingQuery retrieves one state-filtered slice of an actor's bookings.
type bookingQuery func(ctx context.Context, actorID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error)

// BookingService is the application service for the booking lifecycle:
// creation, owner resolution, and the categorized listings.
type BookingService struct {
	bookings  bookingDomain.Repository
	users     userDomain.Repository
	items     itemDomain.Repository
	publisher EventPublisher
	logger    *zap.Logger

	// State filters dispatch through these tables; an unmapped filter yields
	// an empty listing, not an error.
	bookerQueries map[bookingDomain.StateFilter]bookingQuery
	ownerQueries  map[bookingDomain.StateFilter]bookingQuery
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.Repository,
	users userDomain.Repository,
	items itemDomain.Repository,
	publisher EventPublisher,
	logger *zap.Logger,
) *BookingService {
	s := &BookingService{
		bookings:  bookings,
		users:     users,
		items:     items,
		publisher: publisher,
		logger:    logger,
	}

	s.bookerQueries = map[bookingDomain.StateFilter]bookingQuery{
		bookingDomain.FilterAll: func(ctx context.Context, id int64, _ time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
			return s.bookings.FindByBooker(ctx, id, pg)
		},
		bookingDomain.FilterCurrent: s.bookings.FindCurrentByBooker,
		bookingDomain.FilterPast:    s.bookings.FindPastByBooker,
		bookingDomain.FilterFuture:  s.bookings.FindFutureByBooker,
		bookingDomain.FilterWaiting: func(ctx context.Context, id int64, _ time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
			return s.bookings.FindByBookerAndStatus(ctx, id, bookingDomain.StatusWaiting, pg)
		},
		bookingDomain.FilterRejected: func(ctx context.Context, id int64, _ time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
			return s.bookings.FindByBookerAndStatus(ctx, id, bookingDomain.StatusRejected, pg)
		},
	}

	s.ownerQueries = map[bookingDomain.StateFilter]bookingQuery{
		bookingDomain.FilterAll: func(ctx context.Context, id int64, _ time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
			return s.bookings.FindByOwner(ctx, id, pg)
		},
		bookingDomain.FilterCurrent: s.bookings.FindCurrentByOwner,
		bookingDomain.FilterPast:    s.bookings.FindPastByOwner,
		bookingDomain.FilterFuture:  s.bookings.FindFutureByOwner,
		bookingDomain.FilterWaiting: func(ctx context.Context, id int64, _ time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
			return s.bookings.FindByOwnerAndStatus(ctx, id, bookingDomain.StatusWaiting, pg)
		},
		bookingDomain.FilterRejected: func(ctx context.Context, id int64, _ time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
			return s.bookings.FindByOwnerAndStatus(ctx, id, bookingDomain.StatusRejected, pg)
		},
	}

	return s
}

// CreateBooking validates and persists a new WAITING booking for the booker.
func (s *BookingService) CreateBooking(ctx context.Context, bookerID int64, req CreateBookingRequest) (*BookingDTO, error) {
	booker, err := s.users.FindByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	itm, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if itm.IsOwnedBy(bookerID) {
		return nil, apperror.New(apperror.KindNotFound, "owner cannot book their own item")
	}
	if !itm.Available {
		return nil, apperror.NewValidationError("item is not available for booking")
	}

	bk, err := bookingDomain.New(req.ItemID, bookerID, req.Start, req.End, time.Now())
	if err != nil {
		return nil, err
	}

	saved, err := s.bookings.Save(ctx, bk)
	if err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	metrics.IncBookingsCreated()

	s.publishEvent(ctx, events.BookingCreated, saved.ID(), events.BookingCreatedEvent{
		BookingID:  saved.ID(),
		ItemID:     itm.ID,
		BookerID:   bookerID,
		OwnerID:    itm.OwnerID,
		Start:      saved.Start(),
		End:        saved.End(),
		OccurredAt: time.Now().UTC(),
	})

	s.logger.Info("booking created",
		zap.Int64("booking_id", saved.ID()),
		zap.Int64("item_id", itm.ID),
		zap.Int64("booker_id", bookerID),
	)

	dto := newBookingDTO(saved, itm, booker)
	return &dto, nil
}

// ResolveBooking applies the owner's approve/reject decision to a WAITING
// booking.
func (s *BookingService) ResolveBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// A booker resolving their own request is reported as not-found, not
	// forbidden. Long-standing client-visible behavior.
	if bk.IsBookedBy(ownerID) {
		return nil, apperror.New(apperror.KindNotFound, "booker cannot resolve their own booking")
	}

	itm, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}
	if !itm.IsOwnedBy(ownerID) {
		return nil, apperror.NewForbiddenError("user has no rights to change this booking's status")
	}

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		return nil, err
	}

	if err := bk.Resolve(approved); err != nil {
		return nil, err
	}

	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	eventType := events.BookingApproved
	if !approved {
		eventType = events.BookingRejected
	}
	s.publishEvent(ctx, eventType, bk.ID(), events.BookingResolvedEvent{
		BookingID:  bk.ID(),
		ItemID:     itm.ID,
		BookerID:   bk.BookerID(),
		OwnerID:    ownerID,
		Status:     bk.Status().String(),
		OccurredAt: time.Now().UTC(),
	})

	dto := newBookingDTO(bk, itm, booker)
	return &dto, nil
}

// GetBookingByID retrieves a booking for its booker or the item's owner.
func (s *BookingService) GetBookingByID(ctx context.Context, requesterID, bookingID int64) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	itm, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}

	if !bk.IsBookedBy(requesterID) && !itm.IsOwnedBy(requesterID) {
		return nil, apperror.New(apperror.KindNotFound, "user is neither the item's owner nor its booker")
	}

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		return nil, err
	}

	dto := newBookingDTO(bk, itm, booker)
	return &dto, nil
}

// GetBookerBookings lists the user's own bookings under the given state
// filter.
func (s *BookingService) GetBookerBookings(ctx context.Context, bookerID int64, state bookingDomain.StateFilter, from, size int) ([]BookingDTO, error) {
	return s.listBookings(ctx, bookerID, state, from, size, s.bookerQueries)
}

// GetOwnerBookings lists the bookings of the user's items under the given
// state filter.
func (s *BookingService) GetOwnerBookings(ctx context.Context, ownerID int64, state bookingDomain.StateFilter, from, size int) ([]BookingDTO, error) {
	return s.listBookings(ctx, ownerID, state, from, size, s.ownerQueries)
}

func (s *BookingService) listBookings(
	ctx context.Context,
	actorID int64,
	state bookingDomain.StateFilter,
	from, size int,
	queries map[bookingDomain.StateFilter]bookingQuery,
) ([]BookingDTO, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	pg, err := pagination.New(from, size)
	if err != nil {
		return nil, err
	}

	query, ok := queries[state]
	if !ok {
		return []BookingDTO{}, nil
	}

	bookings, err := query(ctx, actorID, time.Now(), pg)
	if err != nil {
		return nil, err
	}
	return s.assembleBookingDTOs(ctx, bookings)
}

func (s *BookingService) requireUser(ctx context.Context, userID int64) error {
	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewNotFoundError("user", strconv.FormatInt(userID, 10))
	}
	return nil
}

func (s *BookingService) assembleBookingDTOs(ctx context.Context, bookings []*bookingDomain.Booking) ([]BookingDTO, error) {
	dtos := make([]BookingDTO, 0, len(bookings))
	for _, bk := range bookings {
		itm, err := s.items.FindByID(ctx, bk.ItemID())
		if err != nil {
			return nil, err
		}
		booker, err := s.users.FindByID(ctx, bk.BookerID())
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, newBookingDTO(bk, itm, booker))
	}
	return dtos, nil
}

func (s *BookingService) publishEvent(ctx context.Context, eventType string, bookingID int64, data interface{}) {
	key := strconv.FormatInt(bookingID, 10)
	if err := s.publisher.Publish(ctx, events.TopicBookingEvents, eventType, key, data); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Int64("booking_id", bookingID),
			zap.Error(err),
		)
	}
}

func newBookingDTO(bk *bookingDomain.Booking, itm *itemDomain.Item, booker *userDomain.User) BookingDTO {
	return BookingDTO{
		ID:     bk.ID(),
		Start:  bk.Start(),
		End:    bk.End(),
		Status: bk.Status().String(),
		Booker: newUserDTO(booker),
		Item:   newItemDTO(itm),
	}
}
