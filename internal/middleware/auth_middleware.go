package middleware

import (
	"strings"

	"go-dashboard-api/internal/access"
	"go-dashboard-api/internal/model"
	"go-dashboard-api/internal/repository"
	"go-dashboard-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// UserKey is the locals key holding the authenticated user snapshot
const UserKey = "user"

// RequireAuth validates the JWT token, checks the session against the DB,
// and stores the user snapshot (with its custom role preloaded) in locals.
// Downstream guards and handlers read the snapshot from there; there is no
// other channel for the current user.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		tokenString := parts[1]

		// Validate token
		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Check strict session against DB
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}

		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "User account is inactive"})
		}

		if user.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged in on another device)"})
		}

		// Set user snapshot in context for downstream handlers
		c.Locals(UserKey, user)
		c.Locals("user_id", user.ID.String())

		return c.Next()
	}
}

// UserFromCtx returns the authenticated user snapshot set by RequireAuth,
// or nil when absent
func UserFromCtx(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(UserKey).(*model.User)
	return user
}

// RequirePermission checks that the authenticated user may perform action
// on module before letting the request through
func RequirePermission(module, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := UserFromCtx(c)
		if !access.HasPermission(user, module, action) {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires " + module + ":" + action + " permission",
			})
		}
		return c.Next()
	}
}

// RequireFullAccess only lets unconditionally privileged users through
func RequireFullAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := UserFromCtx(c)
		if !access.HasFullAccess(user) {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: requires full access"})
		}
		return c.Next()
	}
}

// RequireTeamManager only lets team managers (or full access) through
func RequireTeamManager() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := UserFromCtx(c)
		if !access.IsTeamManager(user) {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: requires team manager access"})
		}
		return c.Next()
	}
}
