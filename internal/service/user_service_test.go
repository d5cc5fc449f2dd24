package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"rfqdesk/internal/cache"
	"rfqdesk/internal/errors"
	"rfqdesk/internal/model"
)

// A nil cache client degrades to a no-op, so services can be tested without redis.
var noCache *cache.Client

func TestUserService_GetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Email: "jane@acme.com"}, nil)

		svc := NewUserService(mockRepo, noCache)
		user, err := svc.GetProfile(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, "jane@acme.com", user.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("identity no longer resolves", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, noCache)
		user, err := svc.GetProfile(context.Background(), userID)

		assert.Equal(t, errors.ErrUserNotFound, err)
		assert.Nil(t, user)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("filters to the allow-listed fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("UpdateFields", mock.Anything, userID, map[string]interface{}{
			"first_name": "Janet",
			"location":   "Berlin",
		}).Return(&model.User{ID: userID, FirstName: "Janet", Location: "Berlin"}, nil)

		svc := NewUserService(mockRepo, noCache)
		user, err := svc.UpdateProfile(context.Background(), userID, map[string]interface{}{
			"firstName": "Janet",
			"location":  "Berlin",
			"role":      "admin",          // not updatable
			"email":     "evil@acme.com", // not updatable
		}, "", "")

		assert.NoError(t, err)
		assert.Equal(t, "Janet", user.FirstName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nothing updatable", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository), noCache)
		user, err := svc.UpdateProfile(context.Background(), userID, map[string]interface{}{
			"role":  "admin",
			"email": "evil@acme.com",
		}, "", "")

		assert.Equal(t, errors.ErrNoValidFields, err)
		assert.Nil(t, user)
	})

	t.Run("image reference travels with the update", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("UpdateFields", mock.Anything, userID, map[string]interface{}{
			"bio":                "Welder",
			"image_path":         "uploads/abc.png",
			"image_content_type": "image/png",
		}).Return(&model.User{ID: userID, Bio: "Welder", ImagePath: "uploads/abc.png"}, nil)

		svc := NewUserService(mockRepo, noCache)
		user, err := svc.UpdateProfile(context.Background(), userID, map[string]interface{}{
			"bio": "Welder",
		}, "uploads/abc.png", "image/png")

		assert.NoError(t, err)
		assert.Equal(t, "uploads/abc.png", user.ImagePath)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_ListClients(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("ListByRole", mock.Anything, model.RoleClient, 20, 10).Return([]model.User{
		{Email: "a@x.com", Role: model.RoleClient},
	}, nil)
	mockRepo.On("CountByRole", mock.Anything, model.RoleClient).Return(int64(21), nil)

	svc := NewUserService(mockRepo, noCache)
	users, total, err := svc.ListClients(context.Background(), 3, 10)

	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(21), total)
	mockRepo.AssertExpectations(t)
}
