package controller

import (
	"errors"
	"time"

	"nirogya-be/internal/config"
	"nirogya-be/internal/dto"
	"nirogya-be/internal/pkg/serverutils"
	"nirogya-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	authCfg config.AuthConfig
}

func NewAuthController(service service.IAuthService, authCfg config.AuthConfig) IAuthController {
	return &authController{service: service, authCfg: authCfg}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	mw := serverutils.JwtMiddleware(c.authCfg)
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", mw, c.Logout)
	h.Get("/me", mw, c.Me)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "All fields are required",
		})
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "All fields are required",
		})
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return ctx.JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    res,
	})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid credentials",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     c.authCfg.CookieName,
		Value:    res.Token,
		Expires:  time.Now().Add(c.authCfg.TokenTTL),
		HTTPOnly: true,
		Secure:   c.authCfg.CookieSecure,
		SameSite: c.authCfg.CookieSameSite,
	})

	return ctx.JSON(fiber.Map{
		"success": true,
		"token":   res.Token,
		"user":    res.User,
	})
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	// Stateless tokens: logout just expires the cookie.
	ctx.Cookie(&fiber.Cookie{
		Name:     c.authCfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   c.authCfg.CookieSecure,
		SameSite: c.authCfg.CookieSameSite,
	})

	return ctx.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userID, err := uuid.Parse(asString(ctx.Locals("user_id")))
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid token",
		})
	}

	user, err := c.service.Me(ctx.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return ctx.JSON(fiber.Map{
		"user": user,
	})
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
