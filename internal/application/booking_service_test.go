package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shareit-platform/service-sharing/internal/apperror"
	bookingDomain "github.com/shareit-platform/service-sharing/internal/domain/booking"
	itemDomain "github.com/shareit-platform/service-sharing/internal/domain/item"
	userDomain "github.com/shareit-platform/service-sharing/internal/domain/user"
	"github.com/shareit-platform/service-sharing/internal/events"
)

type bookingServiceFixture struct {
	bookings  *mockBookingRepo
	users     *mockUserRepo
	items     *mockItemRepo
	publisher *mockPublisher
	service   *BookingService
}

func newBookingServiceFixture() *bookingServiceFixture {
	f := &bookingServiceFixture{
		bookings:  &mockBookingRepo{},
		users:     &mockUserRepo{},
		items:     &mockItemRepo{},
		publisher: &mockPublisher{},
	}
	f.service = NewBookingService(f.bookings, f.users, f.items, f.publisher, zap.NewNop())
	return f
}

func testBooker() *userDomain.User {
	return &userDomain.User{ID: 42, Name: "Alice", Email: "alice@example.com"}
}

func testOwner() *userDomain.User {
	return &userDomain.User{ID: 7, Name: "Bob", Email: "bob@example.com"}
}

func testItem(available bool) *itemDomain.Item {
	return &itemDomain.Item{ID: 5, Name: "Drill", Description: "Cordless drill", Available: available, OwnerID: 7}
}

func TestCreateBooking_Success(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()
	start := time.Now().Add(1 * time.Hour)
	end := time.Now().Add(2 * time.Hour)

	f.users.On("FindByID", ctx, int64(42)).Return(testBooker(), nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)
	f.bookings.On("Save", ctx, mock.AnythingOfType("*booking.Booking")).Return(
		bookingDomain.Reconstruct(100, start, end, 5, 42, bookingDomain.StatusWaiting), nil)
	f.publisher.On("Publish", ctx, events.TopicBookingEvents, events.BookingCreated, "100", mock.Anything).Return(nil)

	dto, err := f.service.CreateBooking(ctx, 42, CreateBookingRequest{Start: start, End: end, ItemID: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(100), dto.ID)
	assert.Equal(t, "WAITING", dto.Status)
	assert.Equal(t, int64(42), dto.Booker.ID)
	assert.Equal(t, int64(5), dto.Item.ID)
	f.publisher.AssertExpectations(t)
}

func TestCreateBooking_StatusInPayloadIsIgnored(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()
	start := time.Now().Add(1 * time.Hour)
	end := time.Now().Add(2 * time.Hour)

	f.users.On("FindByID", ctx, int64(42)).Return(testBooker(), nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)
	f.bookings.On("Save", ctx, mock.MatchedBy(func(b *bookingDomain.Booking) bool {
		return b.Status() == bookingDomain.StatusWaiting
	})).Return(bookingDomain.Reconstruct(100, start, end, 5, 42, bookingDomain.StatusWaiting), nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	approved := "APPROVED"
	dto, err := f.service.CreateBooking(ctx, 42, CreateBookingRequest{
		Start: start, End: end, ItemID: 5, Status: &approved,
	})
	require.NoError(t, err)
	assert.Equal(t, "WAITING", dto.Status)
}

func TestCreateBooking_OwnItemIsNotFound(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.users.On("FindByID", ctx, int64(7)).Return(testOwner(), nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)

	_, err := f.service.CreateBooking(ctx, 7, CreateBookingRequest{
		Start: time.Now().Add(time.Hour), End: time.Now().Add(2 * time.Hour), ItemID: 5,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestCreateBooking_UnavailableItem(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.users.On("FindByID", ctx, int64(42)).Return(testBooker(), nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(false), nil)

	_, err := f.service.CreateBooking(ctx, 42, CreateBookingRequest{
		Start: time.Now().Add(time.Hour), End: time.Now().Add(2 * time.Hour), ItemID: 5,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.EqualError(t, err, "item is not available for booking")
}

func TestCreateBooking_InvalidWindow(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.users.On("FindByID", ctx, int64(42)).Return(testBooker(), nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)

	_, err := f.service.CreateBooking(ctx, 42, CreateBookingRequest{
		Start: time.Now().Add(2 * time.Hour), End: time.Now().Add(time.Hour), ItemID: 5,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	f.bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateBooking_UnknownBooker(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.users.On("FindByID", ctx, int64(99)).Return(nil, apperror.NewNotFoundError("user", "99"))

	_, err := f.service.CreateBooking(ctx, 99, CreateBookingRequest{
		Start: time.Now().Add(time.Hour), End: time.Now().Add(2 * time.Hour), ItemID: 5,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestCreateBooking_PublishFailureDoesNotFailRequest(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()
	start := time.Now().Add(1 * time.Hour)
	end := time.Now().Add(2 * time.Hour)

	f.users.On("FindByID", ctx, int64(42)).Return(testBooker(), nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)
	f.bookings.On("Save", ctx, mock.Anything).Return(
		bookingDomain.Reconstruct(100, start, end, 5, 42, bookingDomain.StatusWaiting), nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	dto, err := f.service.CreateBooking(ctx, 42, CreateBookingRequest{Start: start, End: end, ItemID: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(100), dto.ID)
}

func waitingBooking() *bookingDomain.Booking {
	return bookingDomain.Reconstruct(100,
		time.Now().Add(time.Hour), time.Now().Add(2*time.Hour), 5, 42, bookingDomain.StatusWaiting)
}

func TestResolveBooking_Approve(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.bookings.On("FindByID", ctx, int64(100)).Return(waitingBooking(), nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)
	f.bookings.On("Update", ctx, mock.MatchedBy(func(b *bookingDomain.Booking) bool {
		return b.Status() == bookingDomain.StatusApproved
	})).Return(nil)
	f.publisher.On("Publish", ctx, events.TopicBookingEvents, events.BookingApproved, "100", mock.Anything).Return(nil)
	f.users.On("FindByID", ctx, int64(42)).Return(testBooker(), nil)

	dto, err := f.service.ResolveBooking(ctx, 7, 100, true)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", dto.Status)
	f.publisher.AssertExpectations(t)
}

func TestResolveBooking_Reject(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.bookings.On("FindByID", ctx, int64(100)).Return(waitingBooking(), nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)
	f.bookings.On("Update", ctx, mock.Anything).Return(nil)
	f.publisher.On("Publish", ctx, events.TopicBookingEvents, events.BookingRejected, "100", mock.Anything).Return(nil)
	f.users.On("FindByID", ctx, int64(42)).Return(testBooker(), nil)

	dto, err := f.service.ResolveBooking(ctx, 7, 100, false)
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", dto.Status)
}

func TestResolveBooking_BookerResolvingOwnIsNotFound(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.bookings.On("FindByID", ctx, int64(100)).Return(waitingBooking(), nil)

	_, err := f.service.ResolveBooking(ctx, 42, 100, true)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestResolveBooking_ThirdUserIsForbidden(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.bookings.On("FindByID", ctx, int64(100)).Return(waitingBooking(), nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)

	_, err := f.service.ResolveBooking(ctx, 999, 100, true)
	require.Error(t, err)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestResolveBooking_AlreadyApproved(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	approved := bookingDomain.Reconstruct(100,
		time.Now().Add(time.Hour), time.Now().Add(2*time.Hour), 5, 42, bookingDomain.StatusApproved)
	f.bookings.On("FindByID", ctx, int64(100)).Return(approved, nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)
	f.users.On("FindByID", ctx, int64(42)).Return(testBooker(), nil)

	_, err := f.service.ResolveBooking(ctx, 7, 100, false)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.EqualError(t, err, "booking has already been approved")
	f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestResolveBooking_MissingBookerLeavesBookingUntouched(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.bookings.On("FindByID", ctx, int64(100)).Return(waitingBooking(), nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)
	f.users.On("FindByID", ctx, int64(42)).Return(nil, apperror.NewNotFoundError("user", "42"))

	_, err := f.service.ResolveBooking(ctx, 7, 100, true)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetBookingByID_AccessControl(t *testing.T) {
	tests := []struct {
		name        string
		requesterID int64
		wantErr     bool
	}{
		{"booker sees it", 42, false},
		{"owner sees it", 7, false},
		{"third user gets not found", 999, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingServiceFixture()
			ctx := context.Background()

			f.bookings.On("FindByID", ctx, int64(100)).Return(waitingBooking(), nil)
			f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)
			f.users.On("FindByID", ctx, int64(42)).Return(testBooker(), nil)

			dto, err := f.service.GetBookingByID(ctx, tc.requesterID, 100)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(100), dto.ID)
		})
	}
}

func TestGetBookerBookings_AllUsesUnfilteredQuery(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.users.On("ExistsByID", ctx, int64(42)).Return(true, nil)
	f.bookings.On("FindByBooker", ctx, int64(42), mock.Anything).
		Return([]*bookingDomain.Booking{waitingBooking()}, nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)
	f.users.On("FindByID", ctx, int64(42)).Return(testBooker(), nil)

	dtos, err := f.service.GetBookerBookings(ctx, 42, bookingDomain.FilterAll, 0, 10)
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, int64(100), dtos[0].ID)
}

func TestGetBookerBookings_CurrentDispatchesToCurrentQuery(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.users.On("ExistsByID", ctx, int64(42)).Return(true, nil)
	f.bookings.On("FindCurrentByBooker", ctx, int64(42), mock.AnythingOfType("time.Time"), mock.Anything).
		Return([]*bookingDomain.Booking{}, nil)

	dtos, err := f.service.GetBookerBookings(ctx, 42, bookingDomain.FilterCurrent, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, dtos)
	f.bookings.AssertCalled(t, "FindCurrentByBooker", ctx, int64(42), mock.AnythingOfType("time.Time"), mock.Anything)
}

func TestGetOwnerBookings_WaitingFiltersByStatus(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.users.On("ExistsByID", ctx, int64(7)).Return(true, nil)
	f.bookings.On("FindByOwnerAndStatus", ctx, int64(7), bookingDomain.StatusWaiting, mock.Anything).
		Return([]*bookingDomain.Booking{waitingBooking()}, nil)
	f.items.On("FindByID", ctx, int64(5)).Return(testItem(true), nil)
	f.users.On("FindByID", ctx, int64(42)).Return(testBooker(), nil)

	dtos, err := f.service.GetOwnerBookings(ctx, 7, bookingDomain.FilterWaiting, 0, 10)
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "WAITING", dtos[0].Status)
}

func TestGetBookerBookings_UnknownUser(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.users.On("ExistsByID", ctx, int64(99)).Return(false, nil)

	_, err := f.service.GetBookerBookings(ctx, 99, bookingDomain.FilterAll, 0, 10)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestGetBookerBookings_InvalidPagination(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.users.On("ExistsByID", ctx, int64(42)).Return(true, nil)

	_, err := f.service.GetBookerBookings(ctx, 42, bookingDomain.FilterAll, -1, 10)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = f.service.GetBookerBookings(ctx, 42, bookingDomain.FilterAll, 0, 0)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestGetBookerBookings_UnmappedFilterYieldsEmpty(t *testing.T) {
	f := newBookingServiceFixture()
	ctx := context.Background()

	f.users.On("ExistsByID", ctx, int64(42)).Return(true, nil)

	dtos, err := f.service.GetBookerBookings(ctx, 42, bookingDomain.StateFilter("UNMAPPED"), 0, 10)
	require.NoError(t, err)
	assert.NotNil(t, dtos)
	assert.Empty(t, dtos)
}
