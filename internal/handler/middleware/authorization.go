package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole verifies that the caller's role claim matches one of the
// required roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Token tidak ditemukan.",
			})
		}

		for _, required := range roles {
			if role == required {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Anda tidak memiliki izin untuk mengakses sumber daya ini.",
		})
	}
}

// RequireAdmin gates administrative routes (corrections, reports)
func RequireAdmin() fiber.Handler {
	return RequireRole("admin")
}
