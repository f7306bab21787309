package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/shareit-platform/service-sharing/internal/apperror"
	userDomain "github.com/shareit-platform/service-sharing/internal/domain/user"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null;size:255"`
	Email string `gorm:"not null;size:512;uniqueIndex"`
}

// TableName returns the table name for the GORM model.
func (UserModel) TableName() string {
	return "users"
}

// GormUserRepository is the GORM-based implementation of the user repository.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID retrieves a user by id.
func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*userDomain.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("user", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return toDomainUser(&model), nil
}

// ExistsByID reports whether a user with the given id exists.
func (r *GormUserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

// FindAll retrieves every user ordered by id.
func (r *GormUserRepository) FindAll(ctx context.Context) ([]*userDomain.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users := make([]*userDomain.User, len(models))
	for i := range models {
		users[i] = toDomainUser(&models[i])
	}
	return users, nil
}

// Save persists a new user. A duplicate email is reported as a conflict.
func (r *GormUserRepository) Save(ctx context.Context, u *userDomain.User) (*userDomain.User, error) {
	model := &UserModel{Name: u.Name, Email: u.Email}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("user email is already registered")
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return toDomainUser(model), nil
}

// Update persists changes to an existing user.
func (r *GormUserRepository) Update(ctx context.Context, u *userDomain.User) error {
	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{"name": u.Name, "email": u.Email})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperror.NewConflictError("user email is already registered")
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError("user", strconv.FormatInt(u.ID, 10))
	}
	return nil
}

// Delete removes a user by id.
func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&UserModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func toDomainUser(m *UserModel) *userDomain.User {
	return &userDomain.User{ID: m.ID, Name: m.Name, Email: m.Email}
}
