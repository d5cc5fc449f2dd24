package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"rfqdesk/internal/auth"
	"rfqdesk/internal/model"
)

type fakeTokenStore struct {
	revoked map[string]bool
}

func (s *fakeTokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = map[string]bool{}
	}
	s.revoked[tokenID] = true
	return nil
}

func (s *fakeTokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], nil
}

func contextWithClaims(role string, tokenID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	claims := &auth.Claims{
		UserID: uuid.New(),
		Email:  "jane@acme.com",
		Name:   "Jane",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	c.Set("user", &jwt.Token{Claims: claims, Valid: true})
	return c, rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []model.Role
		role       string
		wantStatus int
	}{
		{"admin allowed on admin route", []model.Role{model.RoleAdmin}, "admin", http.StatusOK},
		{"client forbidden on admin route", []model.Role{model.RoleAdmin}, "client", http.StatusForbidden},
		{"employee forbidden on admin route", []model.Role{model.RoleAdmin}, "employee", http.StatusForbidden},
		{"employee allowed on employee route", []model.Role{model.RoleEmployee}, "employee", http.StatusOK},
		{"unknown role forbidden", []model.Role{model.RoleClient}, "superuser", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := contextWithClaims(tt.role, uuid.New().String())

			err := RequireRoles(tt.allowed...)(okHandler)(c)

			if tt.wantStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.wantStatus, httpErr.Code)
			}
		})
	}
}

func TestRequireRoles_NoClaims(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := RequireRoles(model.RoleAdmin)(okHandler)(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRejectRevoked(t *testing.T) {
	store := &fakeTokenStore{}
	assert.NoError(t, store.RevokeToken(context.Background(), "revoked-jti", time.Hour))

	t.Run("live token passes", func(t *testing.T) {
		c, rec := contextWithClaims("client", "live-jti")
		err := RejectRevoked(store)(okHandler)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("revoked token refused", func(t *testing.T) {
		c, _ := contextWithClaims("client", "revoked-jti")
		err := RejectRevoked(store)(okHandler)(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
