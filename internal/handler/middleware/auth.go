package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/pkg/jwt"
)

// AuthMiddleware validates the bearer token and places the verified identity
// in the request locals (user_id, nama, role) for downstream handlers.
func AuthMiddleware(tokenService *jwt.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Token tidak ditemukan.",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Format token tidak valid.",
			})
		}

		claims, err := tokenService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Token tidak valid atau sudah kedaluwarsa.",
			})
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Token tidak valid atau sudah kedaluwarsa.",
			})
		}

		c.Locals("user_id", userID)
		c.Locals("nama", claims.Nama)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
