package middleware

import (
	"log"
	"strings"

	"assignments/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware gating requests on a valid bearer token.
// Every failure mode short-circuits with 401; validation errors are logged,
// never propagated. The validated identity is not attached to the request —
// authentication is the only concern here.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// The "Bearer " prefix is conventional but optional.
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if _, err := authService.ValidateToken(tokenString); err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		return c.Next()
	}
}
