// Package request holds the item-request (want-ad) entity and its
// persistence contract.
package request

import (
	"context"
	"time"

	"github.com/shareit-platform/service-sharing/internal/pagination"
)

// ItemRequest is a user's posted want-ad for an item not currently listed.
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}

// Repository defines the persistence contract for item requests.
type Repository interface {
	// FindByID retrieves a request by id.
	FindByID(ctx context.Context, id int64) (*ItemRequest, error)

	// FindByRequesterID retrieves every request posted by the given user,
	// newest first.
	FindByRequesterID(ctx context.Context, requesterID int64) ([]*ItemRequest, error)

	// FindAllOthers retrieves requests posted by everyone except the given
	// user, newest first.
	FindAllOthers(ctx context.Context, requesterID int64, pg pagination.Page) ([]*ItemRequest, error)

	// Save persists a new request and returns it with its assigned id.
	Save(ctx context.Context, r *ItemRequest) (*ItemRequest, error)
}
