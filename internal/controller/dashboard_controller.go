package controller

import (
	"emerge-career-be/internal/pkg/serverutils"
	"emerge-career-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetDashboard(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
}

func NewDashboardController(service service.IDashboardService) IDashboardController {
	return &dashboardController{service: service}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard/:userId", c.GetDashboard)
}

func (c *dashboardController) GetDashboard(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid user ID"))
	}

	dashboard, err := c.service.GetDashboard(ctx.Context(), userId)
	if err != nil {
		if err.Error() == "user not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("User not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to fetch dashboard data"))
	}

	return ctx.JSON(fiber.Map{
		"success":         true,
		"user":            dashboard.User,
		"goals":           dashboard.Goals,
		"activities":      dashboard.Activities,
		"recommendations": dashboard.Recommendations,
		"trends":          dashboard.Trends,
		"daily_challenge": dashboard.DailyChallenge,
	})
}
