package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/invyfy/invyfy-api/internal/domain"
	"github.com/invyfy/invyfy-api/internal/repository"
	apperrors "github.com/invyfy/invyfy-api/pkg/util"
)

const principalKey = "auth_principal"

// Middleware validates bearer tokens and resolves the caller. The attached
// identity is request-scoped and discarded when the request ends.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs the access guard.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. Every failure mode
// answers 401; the caller cannot tell a missing token from an expired one or
// from a deleted account.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("Access denied. No token provided.")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return apperrors.NewUnauthorized("Access denied. No token provided.")
	}

	userID, err := m.tokens.Parse(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("Invalid token.")
	}

	user, err := m.users.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("Invalid token. User not found.")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &domain.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
	return c.Next()
}

// UserFromContext retrieves the authenticated caller.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
