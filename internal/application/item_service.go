package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-platform/service-sharing/internal/apperror"
	bookingDomain "github.com/shareit-platform/service-sharing/internal/domain/booking"
	itemDomain "github.com/shareit-platform/service-sharing/internal/domain/item"
	requestDomain "github.com/shareit-platform/service-sharing/internal/domain/request"
	userDomain "github.com/shareit-platform/service-sharing/internal/domain/user"
	"github.com/shareit-platform/service-sharing/internal/pagination"
)

// CreateItemRequest is the request DTO for listing an item.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest is the request DTO for a partial item update; nil fields
// are left unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// ItemDTO is the API response representation of an item.
type ItemDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// ShortBookingDTO is the compact booking summary shown on item views.
type ShortBookingDTO struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// CommentDTO is the API representation of an item comment.
type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemDetailsDTO is an item with its booking summaries and comments. The
// last/next slots are only filled for the item's owner.
type ItemDetailsDTO struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Available   bool             `json:"available"`
	LastBooking *ShortBookingDTO `json:"lastBooking"`
	NextBooking *ShortBookingDTO `json:"nextBooking"`
	Comments    []CommentDTO     `json:"comments"`
}

// CreateCommentRequest is the request DTO for commenting on an item.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// ItemService implements use cases for the item catalog, including the
// owner-facing views assembled from the booking read-side.
type ItemService struct {
	items    itemDomain.Repository
	comments itemDomain.CommentRepository
	users    userDomain.Repository
	requests requestDomain.Repository
	bookings bookingDomain.Repository
	logger   *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(
	items itemDomain.Repository,
	comments itemDomain.CommentRepository,
	users userDomain.Repository,
	requests requestDomain.Repository,
	bookings bookingDomain.Repository,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		comments: comments,
		users:    users,
		requests: requests,
		bookings: bookings,
		logger:   logger,
	}
}

// CreateItem lists a new item for the owner, optionally bound to the item
// request it fulfills.
func (s *ItemService) CreateItem(ctx context.Context, ownerID int64, req CreateItemRequest) (*ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	if req.RequestID != nil {
		if _, err := s.requests.FindByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	available := req.Available != nil && *req.Available
	itm := &itemDomain.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}

	saved, err := s.items.Save(ctx, itm)
	if err != nil {
		return nil, err
	}

	s.logger.Info("item created",
		zap.Int64("item_id", saved.ID),
		zap.Int64("owner_id", ownerID),
	)
	dto := newItemDTO(saved)
	return &dto, nil
}

// UpdateItem applies a partial update; only the item's owner may do so.
func (s *ItemService) UpdateItem(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) (*ItemDTO, error) {
	existing, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !existing.IsOwnedBy(ownerID) {
		return nil, apperror.NewForbiddenError("only the item's owner may update it")
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Available != nil {
		existing.Available = *req.Available
	}

	if err := s.items.Update(ctx, existing); err != nil {
		return nil, err
	}
	dto := newItemDTO(existing)
	return &dto, nil
}

// GetItemByID retrieves an item with its comments; the owner additionally
// sees the last/next booking summaries.
func (s *ItemService) GetItemByID(ctx context.Context, requesterID, itemID int64) (*ItemDetailsDTO, error) {
	itm, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details, err := s.assembleItemDetails(ctx, itm, itm.IsOwnedBy(requesterID), time.Now())
	if err != nil {
		return nil, err
	}
	return details, nil
}

// GetOwnerItems lists the owner's items, each with booking summaries and
// comments, ordered by item id.
func (s *ItemService) GetOwnerItems(ctx context.Context, ownerID int64, from, size int) ([]ItemDetailsDTO, error) {
	pg, err := pagination.New(from, size)
	if err != nil {
		return nil, err
	}

	items, err := s.items.FindByOwnerID(ctx, ownerID, pg)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dtos := make([]ItemDetailsDTO, 0, len(items))
	for _, itm := range items {
		details, err := s.assembleItemDetails(ctx, itm, true, now)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *details)
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].ID < dtos[j].ID })
	return dtos, nil
}

// SearchItems finds available items matching the text; an empty query is an
// empty result.
func (s *ItemService) SearchItems(ctx context.Context, text string, from, size int) ([]ItemDTO, error) {
	pg, err := pagination.New(from, size)
	if err != nil {
		return nil, err
	}

	if text == "" {
		return []ItemDTO{}, nil
	}

	items, err := s.items.Search(ctx, text, pg)
	if err != nil {
		return nil, err
	}
	dtos := make([]ItemDTO, len(items))
	for i, itm := range items {
		dtos[i] = newItemDTO(itm)
	}
	return dtos, nil
}

// CreateComment posts a comment on an item; the author must have a finished
// booking of it.
func (s *ItemService) CreateComment(ctx context.Context, authorID, itemID int64, req CreateCommentRequest) (*CommentDTO, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperror.NewValidationError("comment text is required")
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	finished, err := s.bookings.FindFinishedByItemAndBooker(ctx, itemID, authorID, time.Now())
	if err != nil {
		return nil, err
	}
	if len(finished) == 0 {
		return nil, apperror.NewValidationError("user has not finished a booking of this item")
	}

	cm := &itemDomain.Comment{
		Text:     req.Text,
		ItemID:   itemID,
		AuthorID: authorID,
		Created:  time.Now().UTC(),
	}
	saved, err := s.comments.Save(ctx, cm)
	if err != nil {
		return nil, err
	}

	return &CommentDTO{
		ID:         saved.ID,
		Text:       saved.Text,
		AuthorName: author.Name,
		Created:    saved.Created,
	}, nil
}

// assembleItemDetails builds the item view. The booking summaries come from
// the booking core's read-side: non-rejected bookings of the item, ordered by
// start ascending, partitioned around now.
func (s *ItemService) assembleItemDetails(ctx context.Context, itm *itemDomain.Item, withBookings bool, now time.Time) (*ItemDetailsDTO, error) {
	details := &ItemDetailsDTO{
		ID:          itm.ID,
		Name:        itm.Name,
		Description: itm.Description,
		Available:   itm.Available,
	}

	if withBookings {
		itemBookings, err := s.bookings.FindByItemExcludingStatus(ctx, itm.ID, bookingDomain.StatusRejected)
		if err != nil {
			return nil, err
		}
		last, next := bookingDomain.Partition(itemBookings, now)
		details.LastBooking = newShortBookingDTO(last)
		details.NextBooking = newShortBookingDTO(next)
	}

	comments, err := s.comments.FindByItemID(ctx, itm.ID)
	if err != nil {
		return nil, err
	}
	details.Comments = make([]CommentDTO, 0, len(comments))
	for _, cm := range comments {
		author, err := s.users.FindByID(ctx, cm.AuthorID)
		if err != nil {
			return nil, err
		}
		details.Comments = append(details.Comments, CommentDTO{
			ID:         cm.ID,
			Text:       cm.Text,
			AuthorName: author.Name,
			Created:    cm.Created,
		})
	}

	return details, nil
}

func newShortBookingDTO(bk *bookingDomain.Booking) *ShortBookingDTO {
	if bk == nil {
		return nil
	}
	return &ShortBookingDTO{ID: bk.ID(), BookerID: bk.BookerID()}
}

func newItemDTO(itm *itemDomain.Item) ItemDTO {
	return ItemDTO{
		ID:          itm.ID,
		Name:        itm.Name,
		Description: itm.Description,
		Available:   itm.Available,
		RequestID:   itm.RequestID,
	}
}
