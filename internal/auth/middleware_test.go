package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invyfy/invyfy-api/internal/domain"
	apperrors "github.com/invyfy/invyfy-api/pkg/util"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user.Public(), nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func newGuardedApp(m *Middleware) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"success": false, "message": de.Message})
		},
	})
	app.Get("/me", m.Handle, func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"id": user.ID, "email": user.Email})
	})
	return app
}

func TestMiddleware_Handle(t *testing.T) {
	t.Parallel()

	tokens := NewTokenManager("test-secret", time.Hour)
	repo := &fakeUserRepo{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Name: "Ana", Email: "ana@x.com"},
	}}
	app := newGuardedApp(NewMiddleware(tokens, repo))

	validToken, _, err := tokens.Generate("user-1")
	require.NoError(t, err)
	deletedUserToken, _, err := tokens.Generate("user-gone")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", authHeader: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", authHeader: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "deleted user", authHeader: "Bearer " + deletedUserToken, wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer " + validToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestMiddleware_CaseInsensitiveBearer(t *testing.T) {
	t.Parallel()

	tokens := NewTokenManager("test-secret", time.Hour)
	repo := &fakeUserRepo{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Name: "Ana", Email: "ana@x.com"},
	}}
	app := newGuardedApp(NewMiddleware(tokens, repo))

	token, _, err := tokens.Generate("user-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
