package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"courseapi/config"
	"courseapi/models"
	"courseapi/services"
	"courseapi/utils"
)

// Key under which the authenticated user is stored on the request.
const userContextKey = "user"

// Protected authenticates a request: a missing bearer credential is
// 401, a bad or expired token is 403, and a token whose user no longer
// exists is 401 again (stale identity). On success the user is
// attached to the context for the role gates and handlers.
func Protected(db *gorm.DB, cfg *config.Config) fiber.Handler {
	authService := services.NewAuthService(db, cfg)

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.Unauthorized(c, "Access denied. No token provided")
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParseJWTToken(tokenString, cfg)
		if err != nil {
			return utils.Forbidden(c, "Invalid or expired token")
		}

		user, err := authService.FindByID(claims.UserID)
		if err != nil {
			return utils.Unauthorized(c, "Invalid token. User not found")
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user attached by Protected, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userContextKey).(*models.User)
	return user
}

// RequireAdmin allows only admins through.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return utils.Unauthorized(c, "Authentication required")
		}
		if user.Role != models.RoleAdmin {
			return utils.Forbidden(c, "Access denied. Admin rights required")
		}
		return c.Next()
	}
}

// RequireInstructorOrAdmin allows instructors and admins through.
func RequireInstructorOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return utils.Unauthorized(c, "Authentication required")
		}
		if user.Role != models.RoleInstructor && user.Role != models.RoleAdmin {
			return utils.Forbidden(c, "Access denied. Instructor or admin rights required")
		}
		return c.Next()
	}
}
