package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/shareit-platform/service-sharing/internal/apperror"
	bookingDomain "github.com/shareit-platform/service-sharing/internal/domain/booking"
	"github.com/shareit-platform/service-sharing/internal/pagination"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Start    time.Time `gorm:"column:start_date;not null;index"`
	End      time.Time `gorm:"column:end_date;not null"`
	ItemID   int64     `gorm:"not null;index"`
	BookerID int64     `gorm:"not null;index"`
	Status   string    `gorm:"not null;size:10;index"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of the booking
// repository. Owner-side queries join items on the booking's item id.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("booking", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find booking by id: %w", err)
	}
	return toDomainBooking(&model), nil
}

// Save persists a new booking and returns it with its assigned id.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	return toDomainBooking(model), nil
}

// Update persists changes to an existing booking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ?", bk.ID()).
		Update("status", bk.Status().String())
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError("booking", strconv.FormatInt(bk.ID(), 10))
	}
	return nil
}

// FindByBooker retrieves every booking made by the user, start descending.
func (r *GormBookingRepository) FindByBooker(ctx context.Context, bookerID int64, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("booker_id = ?", bookerID).
		Order("start_date DESC")
	return r.findPage(q, pg)
}

// FindCurrentByBooker retrieves the user's bookings containing now, id
// ascending.
func (r *GormBookingRepository) FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("booker_id = ? AND start_date < ? AND end_date > ?", bookerID, now, now).
		Order("id ASC")
	return r.findPage(q, pg)
}

// FindPastByBooker retrieves the user's bookings ending before now.
func (r *GormBookingRepository) FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("booker_id = ? AND end_date < ?", bookerID, now).
		Order("start_date DESC")
	return r.findPage(q, pg)
}

// FindFutureByBooker retrieves the user's bookings starting after now.
func (r *GormBookingRepository) FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("booker_id = ? AND start_date > ?", bookerID, now).
		Order("start_date DESC")
	return r.findPage(q, pg)
}

// FindByBookerAndStatus retrieves the user's bookings in the given status.
func (r *GormBookingRepository) FindByBookerAndStatus(ctx context.Context, bookerID int64, status bookingDomain.Status, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("booker_id = ? AND status = ?", bookerID, status.String()).
		Order("start_date DESC")
	return r.findPage(q, pg)
}

// FindByOwner retrieves every booking of the owner's items, start descending.
func (r *GormBookingRepository) FindByOwner(ctx context.Context, ownerID int64, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.ownerScope(ctx, ownerID).
		Order("bookings.start_date DESC")
	return r.findPage(q, pg)
}

// FindCurrentByOwner retrieves bookings of the owner's items containing now.
func (r *GormBookingRepository) FindCurrentByOwner(ctx context.Context, ownerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.ownerScope(ctx, ownerID).
		Where("bookings.start_date < ? AND bookings.end_date > ?", now, now).
		Order("bookings.start_date DESC")
	return r.findPage(q, pg)
}

// FindPastByOwner retrieves bookings of the owner's items ending before now.
func (r *GormBookingRepository) FindPastByOwner(ctx context.Context, ownerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.ownerScope(ctx, ownerID).
		Where("bookings.end_date < ?", now).
		Order("bookings.start_date DESC")
	return r.findPage(q, pg)
}

// FindFutureByOwner retrieves bookings of the owner's items starting after now.
func (r *GormBookingRepository) FindFutureByOwner(ctx context.Context, ownerID int64, now time.Time, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.ownerScope(ctx, ownerID).
		Where("bookings.start_date > ?", now).
		Order("bookings.start_date DESC")
	return r.findPage(q, pg)
}

// FindByOwnerAndStatus retrieves bookings of the owner's items in the given
// status.
func (r *GormBookingRepository) FindByOwnerAndStatus(ctx context.Context, ownerID int64, status bookingDomain.Status, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.ownerScope(ctx, ownerID).
		Where("bookings.status = ?", status.String()).
		Order("bookings.start_date DESC")
	return r.findPage(q, pg)
}

// FindByItemExcludingStatus retrieves an item's bookings not in the given
// status, start ascending.
func (r *GormBookingRepository) FindByItemExcludingStatus(ctx context.Context, itemID int64, excluded bookingDomain.Status) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND status <> ?", itemID, excluded.String()).
		Order("start_date ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find item bookings: %w", err)
	}
	return toDomainBookings(models), nil
}

// FindFinishedByItemAndBooker retrieves the user's bookings of the item that
// ended before now.
func (r *GormBookingRepository) FindFinishedByItemAndBooker(ctx context.Context, itemID, bookerID int64, now time.Time) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND booker_id = ? AND end_date < ?", itemID, bookerID, now).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find finished bookings: %w", err)
	}
	return toDomainBookings(models), nil
}

func (r *GormBookingRepository) ownerScope(ctx context.Context, ownerID int64) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
}

func (r *GormBookingRepository) findPage(q *gorm.DB, pg pagination.Page) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := q.Offset(pg.Offset()).Limit(pg.Limit()).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	return toDomainBookings(models), nil
}

// --- Conversion helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:       bk.ID(),
		Start:    bk.Start(),
		End:      bk.End(),
		ItemID:   bk.ItemID(),
		BookerID: bk.BookerID(),
		Status:   bk.Status().String(),
	}
}

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.Reconstruct(m.ID, m.Start, m.End, m.ItemID, m.BookerID, bookingDomain.Status(m.Status))
}

func toDomainBookings(models []BookingModel) []*bookingDomain.Booking {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bookings[i] = toDomainBooking(&models[i])
	}
	return bookings
}
