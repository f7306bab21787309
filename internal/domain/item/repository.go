package item

import (
	"context"

	"github.com/shareit-platform/service-sharing/internal/pagination"
)

// Repository defines the persistence contract for items.
type Repository interface {
	// FindByID retrieves an item by id.
	FindByID(ctx context.Context, id int64) (*Item, error)

	// ExistsByID reports whether an item with the given id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByOwnerID retrieves the owner's items ordered by id ascending.
	FindByOwnerID(ctx context.Context, ownerID int64, pg pagination.Page) ([]*Item, error)

	// FindByRequestID retrieves the items created to fulfill a request.
	FindByRequestID(ctx context.Context, requestID int64) ([]*Item, error)

	// Search retrieves available items whose name or description contains the
	// text, case-insensitively.
	Search(ctx context.Context, text string, pg pagination.Page) ([]*Item, error)

	// Save persists a new item and returns it with its assigned id.
	Save(ctx context.Context, i *Item) (*Item, error)

	// Update persists changes to an existing item.
	Update(ctx context.Context, i *Item) error
}

// CommentRepository defines the persistence contract for item comments.
type CommentRepository interface {
	// FindByItemID retrieves an item's comments ordered by creation time
	// ascending.
	FindByItemID(ctx context.Context, itemID int64) ([]*Comment, error)

	// Save persists a new comment and returns it with its assigned id.
	Save(ctx context.Context, cm *Comment) (*Comment, error)
}
