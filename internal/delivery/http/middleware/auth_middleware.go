package middleware

import (
	"strings"

	deliverycontext "stockroom/internal/delivery/context"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware is the authorization gate in front of protected handlers.
// It verifies the bearer token and short-circuits the request otherwise;
// no downstream handler runs on failure.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header and attaches the decoded
// account ID to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenRequired
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WrapMessage("token verification failed")
		}

		// Make the subject available to handlers and the service layer.
		c.Set(string(deliverycontext.KeyAccountID), claims.AccountID)
		ctx := deliverycontext.WithAccountID(c.Request().Context(), claims.AccountID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
