package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rfqdesk/internal/auth"
	"rfqdesk/internal/errors"
	"rfqdesk/internal/model"
	"rfqdesk/internal/repository"
)

const bcryptCost = 10

// AuthService handles sign-up, sign-in, and sign-out.
type AuthService interface {
	SignUp(ctx context.Context, firstName, lastName, phoneNo, email, password string, role model.Role) (*model.User, error)
	SignIn(ctx context.Context, email, password string, role model.Role, accessID string) (token string, user *model.User, err error)
	SignOut(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	accessID   string
}

// NewAuthService creates a new authentication service. accessID is the shared
// secret required at sign-in for admin and employee roles.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, accessID string) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		accessID:   accessID,
	}
}

// SignUp creates a new user with a hashed password. No token is issued; the
// caller signs in separately.
func (s *authService) SignUp(ctx context.Context, firstName, lastName, phoneNo, email, password string, role model.Role) (*model.User, error) {
	// Email and phone uniqueness. The unique indexes are the backstop for
	// concurrent sign-ups; these prechecks give the friendly error.
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing, err := s.userRepo.FindByPhone(ctx, phoneNo); err == nil && existing != nil {
		return nil, errors.ErrPhoneTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check phone: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		PhoneNo:      phoneNo,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// SignIn authenticates a user and issues a 24-hour token carrying
// {id, email, first name, role}. The check order and the distinct error for
// each failing check match the observed behavior of the system this replaces.
func (s *authService) SignIn(ctx context.Context, email, password string, role model.Role, accessID string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, errors.ErrEmailNotFound
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrIncorrectPassword
	}

	if user.Role != role {
		return "", nil, errors.ErrRoleMismatch
	}

	// Admins and employees additionally present the shared access id.
	// Clients never need one.
	if role.Privileged() && (accessID == "" || accessID != s.accessID) {
		return "", nil, errors.ErrIncorrectAccessID
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.FirstName, string(user.Role))
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// SignOut revokes a token until its natural expiry.
func (s *authService) SignOut(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.tokenStore.RevokeToken(ctx, tokenID, time.Until(expiresAt))
}
