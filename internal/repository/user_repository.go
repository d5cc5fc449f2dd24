package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rfqdesk/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByPhone(ctx context.Context, phoneNo string) (*model.User, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role, offset, limit int) ([]model.User, error)
	CountByRole(ctx context.Context, role model.Role) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByPhone finds a user by phone number.
func (r *userRepository) FindByPhone(ctx context.Context, phoneNo string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("phone_no = ?", phoneNo).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateFields applies a column map to a user and returns the updated record.
func (r *userRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.User, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

// ListByRole lists users with the given role, paginated.
func (r *userRepository) ListByRole(ctx context.Context, role model.Role, offset, limit int) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CountByRole counts users with the given role.
func (r *userRepository) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("role = ?", role).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
