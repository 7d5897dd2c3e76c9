package middleware

import (
	"context"
	"strings"

	. "rewear/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type AuthContextKey string

const (
	UserKey       AuthContextKey = "user"
	UserKeyFiber  string         = "User"
	TokenKeyFiber string         = "AuthToken"
)

// RequireAuth validates the bearer token and loads the user into the
// request context.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := logger.New("middleware").TraceFromContext(c.UserContext()).Function("RequireAuth")

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		token := tokenParts[1]
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token required",
			})
		}

		userID, err := m.sessionService.ValidateToken(c.UserContext(), token)
		if err != nil {
			log.Info("token validation failed", "error", err.Error())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		user, err := m.userRepo.GetByID(c.UserContext(), userID)
		if err != nil {
			log.Info("user not found for valid token", "userID", userID)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		c.Locals(UserKeyFiber, user)
		c.Locals(TokenKeyFiber, token)

		ctx := context.WithValue(c.UserContext(), UserKey, user)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// GetUser retrieves the authenticated user from the Fiber context
func GetUser(c *fiber.Ctx) *User {
	if user, ok := c.Locals(UserKeyFiber).(*User); ok {
		return user
	}
	return nil
}

// GetToken retrieves the raw bearer token from the Fiber context
func GetToken(c *fiber.Ctx) string {
	if token, ok := c.Locals(TokenKeyFiber).(string); ok {
		return token
	}
	return ""
}
