package controller

import (
	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/pkg/serverutils"
	"emerge-career-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGoalController interface {
	RegisterRoutes(r fiber.Router)
	CreateGoal(ctx *fiber.Ctx) error
	UpdateGoal(ctx *fiber.Ctx) error
	DeleteGoal(ctx *fiber.Ctx) error
	SuggestGoal(ctx *fiber.Ctx) error
}

type goalController struct {
	service service.IGoalService
}

func NewGoalController(service service.IGoalService) IGoalController {
	return &goalController{service: service}
}

func (c *goalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/goals")
	h.Post("/", c.CreateGoal)
	h.Get("/suggest/:userId", c.SuggestGoal)
	h.Put("/:goalId", c.UpdateGoal)
	h.Delete("/:goalId", c.DeleteGoal)
}

func (c *goalController) CreateGoal(ctx *fiber.Ctx) error {
	var req dto.CreateGoalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid goal data"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	goal, err := c.service.CreateGoal(ctx.Context(), &req)
	if err != nil {
		if err.Error() == "user not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("User not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to create goal"))
	}

	return ctx.JSON(serverutils.Merge(serverutils.SuccessResponse("Goal created successfully"), fiber.Map{
		"goal": goal,
	}))
}

func (c *goalController) UpdateGoal(ctx *fiber.Ctx) error {
	goalId, err := uuid.Parse(ctx.Params("goalId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid goal ID"))
	}

	var req dto.UpdateGoalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid goal data"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	goal, err := c.service.UpdateGoal(ctx.Context(), goalId, &req)
	if err != nil {
		if err.Error() == "goal not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Goal not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to update goal"))
	}

	return ctx.JSON(serverutils.Merge(serverutils.SuccessResponse("Goal updated successfully"), fiber.Map{
		"goal": goal,
	}))
}

func (c *goalController) DeleteGoal(ctx *fiber.Ctx) error {
	goalId, err := uuid.Parse(ctx.Params("goalId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid goal ID"))
	}

	if err := c.service.DeleteGoal(ctx.Context(), goalId); err != nil {
		if err.Error() == "goal not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Goal not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to delete goal"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Goal deleted successfully"))
}

func (c *goalController) SuggestGoal(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid user ID"))
	}

	res, err := c.service.SuggestGoal(ctx.Context(), userId)
	if err != nil {
		switch err.Error() {
		case "user not found":
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("User not found"))
		case "user profile incomplete":
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("User profile incomplete. Please add subjects of interest."))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to generate goal suggestions"))
	}

	return ctx.JSON(serverutils.Merge(serverutils.SuccessResponse("New goal added successfully"), fiber.Map{
		"goals": res.Goals,
	}))
}
