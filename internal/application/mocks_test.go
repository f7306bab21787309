package application

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	bookingDomain "github.com/shareit-platform/service-sharing/internal/domain/booking"
	itemDomain "github.com/shareit-platform/service-sharing/internal/domain/item"
	requestDomain "github.com/shareit-platform/service-sharing/internal/domain/request"
	userDomain "github.com/shareit-platform/service-sharing/internal/domain/user"
	"github.com/shareit-platform/service-sharing/internal/pagination"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*userDomain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*userDomain.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]*userDomain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, u *userDomain.User) (*userDomain.User, error) {
	args := m.Called(ctx, u)
	if saved := args.Get(0); saved != nil {
		return saved.(*userDomain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *userDomain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) FindByID(ctx context.Context, id int64) (*itemDomain.Item, error) {
	args := m.Called(ctx, id)
	if i := args.Get(0); i != nil {
		return i.(*itemDomain.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockItemRepo) FindByOwnerID(ctx context.Context, ownerID int64, pg pagination.Page) ([]*itemDomain.Item, error) {
	args := m.Called(ctx, ownerID, pg)
	if i := args.Get(0); i != nil {
		return i.([]*itemDomain.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) FindByRequestID(ctx context.Context, requestID int64) ([]*itemDomain.Item, error) {
	args := m.Called(ctx, requestID)
	if i := args.Get(0); i != nil {
		return i.([]*itemDomain.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Search(ctx context.Context, text string, pg pagination.Page) ([]*itemDomain.Item, error) {
	args := m.Called(ctx, text, pg)
	if i := args.Get(0); i != nil {
		return i.([]*itemDomain.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Save(ctx context.Context, i *itemDomain.Item) (*itemDomain.Item, error) {
	args := m.Called(ctx, i)
	if saved := args.Get(0); saved != nil {
		return saved.(*itemDomain.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, i *itemDomain.Item) error {
	return m.Called(ctx, i).Error(0)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) FindByItemID(ctx context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	args := m.Called(ctx, itemID)
	if c := args.Get(0); c != nil {
		return c.([]*itemDomain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) Save(ctx context.Context, cm *itemDomain.Comment) (*itemDomain.Comment, error) {
	args := m.Called(ctx, cm)
	if saved := args.Get(0); saved != nil {
		return saved.(*itemDomain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRequestRepo struct{ mock.Mock }

func (m *mockRequestRepo) FindByID(ctx context.Context, id int64) (*requestDomain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*requestDomain.ItemRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRequestRepo) FindByRequesterID(ctx context.Context, requesterID int64) ([]*requestDomain.ItemRequest, error) {
	args := m.Called(ctx, requesterID)
	if r := args.Get(0); r != nil {
		return r.([]*requestDomain.ItemRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRequestRepo) FindAllOthers(ctx context.Context, requesterID int64, pg pagination.Page) ([]*requestDomain.ItemRequest, error) {
	args := m.Called(ctx, requesterID, pg)
	if r := args.Get(0); r != nil {
		return r.([]*requestDomain.ItemRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRequestRepo) Save(ctx context.Context, r *requestDomain.ItemRequest) (*requestDomain.ItemRequest, error) {
	args := m.Called(ctx, r)
	if saved := args.Get(0); saved != nil {
		return saved.(*requestDomain.ItemRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) bookings(args mock.Arguments) ([]*bookingDomain.Booking, error) {
	if b := args.Get(0); b != nil {
		return b.([]*bookingDomain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*bookingDomain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Save(ctx context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	args := m.Called(ctx, b)
	if saved := args.Get(0); saved != nil {
		return saved.(*bookingDomain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *bookingDomain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) FindByBooker(ctx context.Context, bookerID int64, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, bookerID, pg))
}

func (m *mockBookingRepo) FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, bookerID, now, pg))
}

func (m *mockBookingRepo) FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, bookerID, now, pg))
}

func (m *mockBookingRepo) FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, bookerID, now, pg))
}

func (m *mockBookingRepo) FindByBookerAndStatus(ctx context.Context, bookerID int64, status bookingDomain.Status, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, bookerID, status, pg))
}

func (m *mockBookingRepo) FindByOwner(ctx context.Context, ownerID int64, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, ownerID, pg))
}

func (m *mockBookingRepo) FindCurrentByOwner(ctx context.Context, ownerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, ownerID, now, pg))
}

func (m *mockBookingRepo) FindPastByOwner(ctx context.Context, ownerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, ownerID, now, pg))
}

func (m *mockBookingRepo) FindFutureByOwner(ctx context.Context, ownerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, ownerID, now, pg))
}

func (m *mockBookingRepo) FindByOwnerAndStatus(ctx context.Context, ownerID int64, status bookingDomain.Status, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, ownerID, status, pg))
}

func (m *mockBookingRepo) FindByItemExcludingStatus(ctx context.Context, itemID int64, excluded bookingDomain.Status) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, itemID, excluded))
}

func (m *mockBookingRepo) FindFinishedByItemAndBooker(ctx context.Context, itemID, bookerID int64, now time.Time) ([]*bookingDomain.Booking, error) {
	return m.bookings(m.Called(ctx, itemID, bookerID, now))
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, topic, eventType, key string, data interface{}) error {
	return m.Called(ctx, topic, eventType, key, data).Error(0)
}
