package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/config"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/models"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/utils"
)

const userContextKey = "currentUser"

// Protect validates JWT tokens and loads the authenticated user into context.
func Protect(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "not authorized to access this route")
		}

		user, err := userFromToken(cfg, db, token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "not authorized to access this route")
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// OptionalAuth loads the user when a valid token is present, and continues
// as guest on any failure.
func OptionalAuth(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}

		if user, err := userFromToken(cfg, db, token); err == nil {
			c.Locals(userContextKey, user)
		}
		return c.Next()
	}
}

// RequireAdmin rejects requests from non-admin users. Must run after Protect.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetCurrentUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "not authorized to access this route")
		}
		if !user.IsAdmin() {
			return fiber.NewError(fiber.StatusForbidden, "user role "+user.Role+" is not authorized to access this route")
		}
		return c.Next()
	}
}

// GetCurrentUser extracts the authenticated user from context.
func GetCurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(userContextKey).(*models.User)
	return user, ok && user != nil
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func userFromToken(cfg *config.Config, db *gorm.DB, token string) (*models.User, error) {
	userID, err := utils.ParseToken(cfg.JWTSecret, token)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
