// Package item holds the item catalog entities and their persistence
// contracts.
package item

import "time"

// Item is a shareable object listed by its owner. RequestID links the item to
// the want-ad it was created to fulfill, when there is one.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// IsOwnedBy reports whether the given user owns the item.
func (i *Item) IsOwnedBy(userID int64) bool {
	return i.OwnerID == userID
}

// Comment is feedback left on an item by a user who has finished a booking
// of it.
type Comment struct {
	ID       int64
	Text     string
	ItemID   int64
	AuthorID int64
	Created  time.Time
}
