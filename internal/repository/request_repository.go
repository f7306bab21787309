package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/shareit-platform/service-sharing/internal/apperror"
	requestDomain "github.com/shareit-platform/service-sharing/internal/domain/request"
	"github.com/shareit-platform/service-sharing/internal/pagination"
)

// RequestModel is the GORM model for the item_requests table.
type RequestModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"not null;size:1000"`
	RequesterID int64     `gorm:"not null;index"`
	Created     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RequestModel) TableName() string {
	return "item_requests"
}

// GormRequestRepository is the GORM-based implementation of the item-request
// repository.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// FindByID retrieves a request by id.
func (r *GormRequestRepository) FindByID(ctx context.Context, id int64) (*requestDomain.ItemRequest, error) {
	var model RequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("item request", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find request by id: %w", err)
	}
	return toDomainRequest(&model), nil
}

// FindByRequesterID retrieves the user's requests, newest first.
func (r *GormRequestRepository) FindByRequesterID(ctx context.Context, requesterID int64) ([]*requestDomain.ItemRequest, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find requester's requests: %w", err)
	}
	return toDomainRequests(models), nil
}

// FindAllOthers retrieves requests posted by everyone except the given user,
// newest first.
func (r *GormRequestRepository) FindAllOthers(ctx context.Context, requesterID int64, pg pagination.Page) ([]*requestDomain.ItemRequest, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requester_id <> ?", requesterID).
		Order("created DESC").
		Offset(pg.Offset()).
		Limit(pg.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find other users' requests: %w", err)
	}
	return toDomainRequests(models), nil
}

// Save persists a new request and returns it with its assigned id.
func (r *GormRequestRepository) Save(ctx context.Context, ir *requestDomain.ItemRequest) (*requestDomain.ItemRequest, error) {
	model := &RequestModel{
		Description: ir.Description,
		RequesterID: ir.RequesterID,
		Created:     ir.Created,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}
	return toDomainRequest(model), nil
}

func toDomainRequest(m *RequestModel) *requestDomain.ItemRequest {
	return &requestDomain.ItemRequest{
		ID:          m.ID,
		Description: m.Description,
		RequesterID: m.RequesterID,
		Created:     m.Created,
	}
}

func toDomainRequests(models []RequestModel) []*requestDomain.ItemRequest {
	requests := make([]*requestDomain.ItemRequest, len(models))
	for i := range models {
		requests[i] = toDomainRequest(&models[i])
	}
	return requests
}
