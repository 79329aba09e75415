package controller

import (
	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/pkg/serverutils"
	"emerge-career-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	SubmitSurvey(ctx *fiber.Ctx) error
	GetUser(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	r.Post("/survey", c.SubmitSurvey)
	r.Get("/user/:userId", c.GetUser)
}

func (c *userController) SubmitSurvey(ctx *fiber.Ctx) error {
	var req dto.SurveyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid survey data"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitSurvey(ctx.Context(), &req)
	if err != nil {
		if err.Error() == "user not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("User not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to submit survey"))
	}

	message := "Survey submitted successfully"
	if req.UserId != nil {
		message = "Profile updated successfully"
	}
	return ctx.JSON(serverutils.Merge(serverutils.SuccessResponse(message), fiber.Map{
		"userId": res.UserId,
	}))
}

func (c *userController) GetUser(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid user ID"))
	}

	user, err := c.service.GetUser(ctx.Context(), userId)
	if err != nil {
		if err.Error() == "user not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("User not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to fetch user data"))
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}
