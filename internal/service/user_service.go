package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rfqdesk/internal/cache"
	"rfqdesk/internal/errors"
	"rfqdesk/internal/model"
	"rfqdesk/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// profileUpdateColumns maps the allow-listed request fields to their columns.
// Anything outside this map is silently dropped from an update.
var profileUpdateColumns = map[string]string{
	"firstName":  "first_name",
	"lastName":   "last_name",
	"phoneNo":    "phone_no",
	"location":   "location",
	"jobTitle":   "job_title",
	"department": "department",
	"bio":        "bio",
}

// UserService handles profile operations.
type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, updates map[string]interface{}, imagePath, imageContentType string) (*model.User, error)
	ListClients(ctx context.Context, page, limit int) ([]model.User, int64, error)
}

type userService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{
		userRepo: userRepo,
		cache:    cache,
	}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("profile:%s", id.String())
}

// GetProfile retrieves a user's own record with caching.
func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, profileCacheTTL)
	}

	return user, nil
}

// UpdateProfile filters the update bag down to the allow-listed fields and
// persists only those. imagePath/imageContentType are set when a new profile
// image was uploaded alongside the update.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, updates map[string]interface{}, imagePath, imageContentType string) (*model.User, error) {
	fields := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		column, ok := profileUpdateColumns[key]
		if !ok {
			log.Printf("profile update: dropping field %q for user %s", key, id)
			continue
		}
		fields[column] = value
	}
	if imagePath != "" {
		fields["image_path"] = imagePath
		fields["image_content_type"] = imageContentType
	}

	if len(fields) == 0 {
		return nil, errors.ErrNoValidFields
	}

	user, err := s.userRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	// Drop the stale cached profile.
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	return user, nil
}

// ListClients returns a page of client-role users plus the total count.
func (s *userService) ListClients(ctx context.Context, page, limit int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	users, err := s.userRepo.ListByRole(ctx, model.RoleClient, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}

	total, err := s.userRepo.CountByRole(ctx, model.RoleClient)
	if err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	return users, total, nil
}
