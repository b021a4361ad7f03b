package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	// Public routes
	authGroup.Post("/login", LoginAPI)
	authGroup.Post("/logout", LogoutAPI)

	// Protected routes
	authGroup.Use(AuthMiddleware)
	authGroup.Get("/me", MeAPI)
	authGroup.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT and sets the claims on the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	// Cookie first, then Authorization header
	tokenString = c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	c.Locals("claims", claims)
	return c.Next()
}

// RequireRole gates a route on a role fixed into the JWT at login.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil || !claims.HasRole(role) {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient permissions")
		}
		return c.Next()
	}
}

// GetClaims returns the JWT claims set by AuthMiddleware, or nil.
func GetClaims(c *fiber.Ctx) *JWTClaims {
	claims, _ := c.Locals("claims").(*JWTClaims)
	return claims
}
