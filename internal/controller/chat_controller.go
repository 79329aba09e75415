package controller

import (
	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/pkg/serverutils"
	"emerge-career-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetHistory(ctx *fiber.Ctx) error
	CreateMessage(ctx *fiber.Ctx) error
	CareerCoach(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/chat/:userId", c.GetHistory)
	r.Post("/chat", c.CreateMessage)
	r.Post("/career-coach", c.CareerCoach)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid user ID"))
	}

	messages, err := c.service.GetHistory(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to fetch chat history"))
	}

	return ctx.JSON(fiber.Map{
		"success":  true,
		"messages": messages,
	})
}

func (c *chatController) CreateMessage(ctx *fiber.Ctx) error {
	var req dto.CreateChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid chat message"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	message, err := c.service.CreateMessage(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to create chat message"))
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

func (c *chatController) CareerCoach(ctx *fiber.Ctx) error {
	var req dto.CareerCoachRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid message"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CareerCoach(ctx.Context(), &req)
	if err != nil {
		if err.Error() == "user not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("User not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to get a response from the career coach"))
	}

	return ctx.JSON(fiber.Map{
		"success":  true,
		"response": res.Response,
	})
}
