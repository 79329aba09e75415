package controller

import (
	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/pkg/serverutils"
	"emerge-career-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	CreateActivity(ctx *fiber.Ctx) error
	GetActivities(ctx *fiber.Ctx) error
}

type activityController struct {
	service service.IActivityService
}

func NewActivityController(service service.IActivityService) IActivityController {
	return &activityController{service: service}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activities")
	h.Post("/", c.CreateActivity)
	h.Get("/:userId", c.GetActivities)
}

func (c *activityController) CreateActivity(ctx *fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid activity data"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	activity, err := c.service.CreateActivity(ctx.Context(), &req)
	if err != nil {
		if err.Error() == "user not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("User not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to create activity"))
	}

	return ctx.JSON(serverutils.Merge(serverutils.SuccessResponse("Activity created successfully"), fiber.Map{
		"activity": activity,
	}))
}

func (c *activityController) GetActivities(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid user ID"))
	}

	activities, err := c.service.GetActivities(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to fetch activities"))
	}

	return ctx.JSON(fiber.Map{
		"success":    true,
		"activities": activities,
	})
}
