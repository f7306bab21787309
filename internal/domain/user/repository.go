package user

import "context"

// Repository defines the persistence contract for users.
type Repository interface {
	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id int64) (*User, error)

	// ExistsByID reports whether a user with the given id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindAll retrieves every user ordered by id.
	FindAll(ctx context.Context) ([]*User, error)

	// Save persists a new user and returns it with its assigned id.
	Save(ctx context.Context, u *User) (*User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) error

	// Delete removes a user by id.
	Delete(ctx context.Context, id int64) error
}
