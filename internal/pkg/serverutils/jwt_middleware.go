package serverutils

import (
	"nirogya-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware authenticates a request from the Authorization header or,
// when no bearer token is present, from the session cookie set at login.
// The signing secret and cookie name come from the injected config so the
// verifier can never drift from whatever the auth service signed with.
func JwtMiddleware(authCfg config.AuthConfig) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := ""

		authHeader := ctx.Get("Authorization")
		if len(authHeader) >= 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		} else {
			tokenStr = ctx.Cookies(authCfg.CookieName)
		}

		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(authCfg.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		ctx.Locals("user_id", claims["user_id"])
		if email, ok := claims["email"].(string); ok {
			ctx.Locals("email", email)
		}
		if username, ok := claims["username"].(string); ok {
			ctx.Locals("username", username)
		}
		return ctx.Next()
	}
}
