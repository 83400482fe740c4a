package controller

import (
	"errors"

	"nirogya-be/internal/config"
	"nirogya-be/internal/dto"
	"nirogya-be/internal/pkg/serverutils"
	"nirogya-be/internal/service"
	"nirogya-be/pkg/assistant/responder"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	HistoryByConversation(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
	GetConversations(ctx *fiber.Ctx) error
	PutConversations(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
	authCfg config.AuthConfig
}

func NewChatbotController(service service.IChatbotService, authCfg config.AuthConfig) IChatbotController {
	return &chatbotController{service: service, authCfg: authCfg}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat", serverutils.JwtMiddleware(c.authCfg))
	h.Post("/generate", c.Generate)
	h.Get("/history", c.History)
	h.Delete("/history", c.ClearHistory)
	h.Get("/history/:conversationId", c.HistoryByConversation)
	h.Get("/conversations", c.GetConversations)
	h.Put("/conversations", c.PutConversations)
}

func (c *chatbotController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query is required",
		})
	}

	username := asString(ctx.Locals("username"))

	res, err := c.service.Generate(ctx.Context(), username, &req)
	if err != nil {
		if errors.Is(err, responder.ErrMissingQuery) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Query is required",
			})
		}
		if errors.Is(err, responder.ErrUpstream) {
			// The reply carries the fixed apologetic fallback; raw upstream
			// detail stays in the logs.
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"reply": res.Reply,
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
		})
	}

	return ctx.JSON(fiber.Map{
		"reply": res.Reply,
	})
}

func (c *chatbotController) History(ctx *fiber.Ctx) error {
	username := asString(ctx.Locals("username"))

	q := dto.HistoryQuery{
		SessionId: ctx.Query("sessionId"),
		Limit:     ctx.QueryInt("limit", 0),
		Offset:    ctx.QueryInt("offset", 0),
	}

	logs, err := c.service.History(ctx.Context(), username, &q)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat history", logs))
}

func (c *chatbotController) ClearHistory(ctx *fiber.Ctx) error {
	username := asString(ctx.Locals("username"))

	if err := c.service.ClearHistory(ctx.Context(), username); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Chat history cleared", nil))
}

func (c *chatbotController) HistoryByConversation(ctx *fiber.Ctx) error {
	username := asString(ctx.Locals("username"))
	conversationID := ctx.Params("conversationId")

	logs, err := c.service.HistoryByConversation(ctx.Context(), username, conversationID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversation history", logs))
}

func (c *chatbotController) GetConversations(ctx *fiber.Ctx) error {
	email := asString(ctx.Locals("email"))

	set, err := c.service.GetConversations(ctx.Context(), email)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversations", dto.ConversationsResponse{Conversations: set}))
}

func (c *chatbotController) PutConversations(ctx *fiber.Ctx) error {
	email := asString(ctx.Locals("email"))

	var req dto.PutConversationsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := c.service.PutConversations(ctx.Context(), email, req.Conversations); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Conversations saved", nil))
}
