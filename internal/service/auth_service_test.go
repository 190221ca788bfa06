package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/invyfy/invyfy-api/internal/config"
	"github.com/invyfy/invyfy-api/internal/domain"
	apperrors "github.com/invyfy/invyfy-api/pkg/util"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.nextID++
	user.ID = "user-" + strconv.Itoa(f.nextID)
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
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 24,
		BcryptCost:    bcrypt.MinCost,
	}
}

func TestAuthService_Signup(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())

	user, token, _, err := svc.Signup(context.Background(), "Ana", "ana@x.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	// the issued token resolves back to the new account
	userID, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())

	_, _, _, err := svc.Signup(context.Background(), "Ana", "ana@x.com", "secret1")
	require.NoError(t, err)

	_, _, _, err = svc.Signup(context.Background(), "Ana Again", "ana@x.com", "different")
	require.Error(t, err)

	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "CONFLICT", de.Code)
	assert.Equal(t, 400, de.HTTPStatus)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())
	created, _, _, err := svc.Signup(context.Background(), "Ana", "ana@x.com", "secret1")
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), "ana@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())
	_, _, _, err := svc.Signup(context.Background(), "Ana", "ana@x.com", "secret1")
	require.NoError(t, err)

	// unknown email and wrong password must be indistinguishable
	_, _, _, unknownErr := svc.Login(context.Background(), "bob@x.com", "secret1")
	_, _, _, wrongErr := svc.Login(context.Background(), "ana@x.com", "wrong")

	var unknownDE, wrongDE *apperrors.DomainError
	require.True(t, errors.As(unknownErr, &unknownDE))
	require.True(t, errors.As(wrongErr, &wrongDE))
	assert.Equal(t, unknownDE.HTTPStatus, wrongDE.HTTPStatus)
	assert.Equal(t, unknownDE.Message, wrongDE.Message)
	assert.Equal(t, 401, wrongDE.HTTPStatus)
}
