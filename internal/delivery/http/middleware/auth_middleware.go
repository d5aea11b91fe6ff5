package middleware

import (
	"strings"

	"github.com/believemanasseh/luciddreams/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUserID is where Authenticate stores the resolved owner's ID for
// downstream handlers.
const ContextKeyUserID = "userID"

// AuthMiddleware validates the opaque bearer token on protected routes.
type AuthMiddleware struct {
	accounts usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accounts usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accounts: accounts}
}

// Authenticate resolves the Authorization header to a user and stores the
// owner's ID on the request context. The header carries the raw opaque token;
// a conventional "Bearer " prefix is tolerated and stripped. Missing or
// unknown tokens surface as the domain's invalid-token error, which the error
// middleware renders as 422 per the public contract.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
		token = strings.TrimPrefix(token, "Bearer ")

		user, err := m.accounts.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(ContextKeyUserID, user.ID)

		return next(c)
	}
}
