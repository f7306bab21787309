package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/shareit-platform/service-sharing/internal/apperror"
	itemDomain "github.com/shareit-platform/service-sharing/internal/domain/item"
	"github.com/shareit-platform/service-sharing/internal/pagination"
)

// ItemModel is the GORM model for the items table.
type ItemModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null;size:255"`
	Description string `gorm:"not null;size:1000"`
	Available   bool   `gorm:"not null"`
	OwnerID     int64  `gorm:"not null;index"`
	RequestID   *int64 `gorm:"index"`
}

// TableName returns the table name for the GORM model.
func (ItemModel) TableName() string {
	return "items"
}

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Text     string    `gorm:"not null;size:2000"`
	ItemID   int64     `gorm:"not null;index"`
	AuthorID int64     `gorm:"not null"`
	Created  time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (CommentModel) TableName() string {
	return "comments"
}

// GormItemRepository is the GORM-based implementation of the item repository.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID retrieves an item by id.
func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*itemDomain.Item, error) {
	var model ItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("item", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find item by id: %w", err)
	}
	return toDomainItem(&model), nil
}

// ExistsByID reports whether an item with the given id exists.
func (r *GormItemRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ItemModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check item existence: %w", err)
	}
	return count > 0, nil
}

// FindByOwnerID retrieves the owner's items ordered by id ascending.
func (r *GormItemRepository) FindByOwnerID(ctx context.Context, ownerID int64, pg pagination.Page) ([]*itemDomain.Item, error) {
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(pg.Offset()).
		Limit(pg.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find owner items: %w", err)
	}
	return toDomainItems(models), nil
}

// FindByRequestID retrieves the items created to fulfill a request.
func (r *GormItemRepository) FindByRequestID(ctx context.Context, requestID int64) ([]*itemDomain.Item, error) {
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by request: %w", err)
	}
	return toDomainItems(models), nil
}

// Search retrieves available items whose name or description contains the
// text, case-insensitively.
func (r *GormItemRepository) Search(ctx context.Context, text string, pg pagination.Page) ([]*itemDomain.Item, error) {
	pattern := "%" + text + "%"
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Where("available = TRUE AND (name ILIKE ? OR description ILIKE ?)", pattern, pattern).
		Order("id ASC").
		Offset(pg.Offset()).
		Limit(pg.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return toDomainItems(models), nil
}

// Save persists a new item and returns it with its assigned id.
func (r *GormItemRepository) Save(ctx context.Context, itm *itemDomain.Item) (*itemDomain.Item, error) {
	model := &ItemModel{
		Name:        itm.Name,
		Description: itm.Description,
		Available:   itm.Available,
		OwnerID:     itm.OwnerID,
		RequestID:   itm.RequestID,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	return toDomainItem(model), nil
}

// Update persists changes to an existing item.
func (r *GormItemRepository) Update(ctx context.Context, itm *itemDomain.Item) error {
	result := r.db.WithContext(ctx).
		Model(&ItemModel{}).
		Where("id = ?", itm.ID).
		Updates(map[string]interface{}{
			"name":        itm.Name,
			"description": itm.Description,
			"available":   itm.Available,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError("item", strconv.FormatInt(itm.ID, 10))
	}
	return nil
}

// GormCommentRepository is the GORM-based implementation of the comment
// repository.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// FindByItemID retrieves an item's comments ordered by creation time
// ascending.
func (r *GormCommentRepository) FindByItemID(ctx context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	var models []CommentModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find item comments: %w", err)
	}
	comments := make([]*itemDomain.Comment, len(models))
	for i := range models {
		comments[i] = toDomainComment(&models[i])
	}
	return comments, nil
}

// Save persists a new comment and returns it with its assigned id.
func (r *GormCommentRepository) Save(ctx context.Context, cm *itemDomain.Comment) (*itemDomain.Comment, error) {
	model := &CommentModel{
		Text:     cm.Text,
		ItemID:   cm.ItemID,
		AuthorID: cm.AuthorID,
		Created:  cm.Created,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return toDomainComment(model), nil
}

func toDomainItem(m *ItemModel) *itemDomain.Item {
	return &itemDomain.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Available:   m.Available,
		OwnerID:     m.OwnerID,
		RequestID:   m.RequestID,
	}
}

func toDomainItems(models []ItemModel) []*itemDomain.Item {
	items := make([]*itemDomain.Item, len(models))
	for i := range models {
		items[i] = toDomainItem(&models[i])
	}
	return items
}

func toDomainComment(m *CommentModel) *itemDomain.Comment {
	return &itemDomain.Comment{
		ID:       m.ID,
		Text:     m.Text,
		ItemID:   m.ItemID,
		AuthorID: m.AuthorID,
		Created:  m.Created,
	}
}
