package application

import (
	"context"

	"go.uber.org/zap"

	userDomain "github.com/shareit-platform/service-sharing/internal/domain/user"
)

// CreateUserRequest is the request DTO for registering a user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest is the request DTO for a partial user update; nil fields
// are left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserDTO is the API response representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserService implements use cases for the user directory.
type UserService struct {
	users  userDomain.Repository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users userDomain.Repository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// CreateUser registers a new user.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserDTO, error) {
	u := &userDomain.User{Name: req.Name, Email: req.Email}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.users.Save(ctx, u)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.Int64("user_id", saved.ID))
	dto := newUserDTO(saved)
	return &dto, nil
}

// UpdateUser applies a partial update to an existing user.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (*UserDTO, error) {
	existing, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, existing); err != nil {
		return nil, err
	}

	dto := newUserDTO(existing)
	return &dto, nil
}

// GetUserByID retrieves a single user.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*UserDTO, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := newUserDTO(u)
	return &dto, nil
}

// GetAllUsers retrieves every registered user.
func (s *UserService) GetAllUsers(ctx context.Context) ([]UserDTO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = newUserDTO(u)
	}
	return dtos, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	return s.users.Delete(ctx, userID)
}

func newUserDTO(u *userDomain.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}
