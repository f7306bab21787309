// Package user holds the user directory entity and its persistence contract.
package user

import (
	"strings"

	"github.com/shareit-platform/service-sharing/internal/apperror"
)

// User is a registered member of the platform.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Validate checks the fields required to register a user.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return apperror.NewValidationError("user name is required")
	}
	if u.Email == "" {
		return apperror.NewValidationError("user email is required")
	}
	if !strings.Contains(u.Email, "@") {
		return apperror.NewValidationError("user email must be a valid address")
	}
	return nil
}
