package controller

import (
	"emerge-career-be/internal/pkg/serverutils"
	"emerge-career-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router)
	GetVideoRecommendation(ctx *fiber.Ctx) error
	GetCourseRecommendation(ctx *fiber.Ctx) error
	GetCareerTrends(ctx *fiber.Ctx) error
}

type recommendationController struct {
	service service.IRecommendationService
}

func NewRecommendationController(service service.IRecommendationService) IRecommendationController {
	return &recommendationController{service: service}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router) {
	r.Get("/personalized-recommendations/:userId", c.GetVideoRecommendation)
	r.Get("/course-recommendation/:userId", c.GetCourseRecommendation)
	r.Get("/career-trends/:subject", c.GetCareerTrends)
}

func (c *recommendationController) GetVideoRecommendation(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid user ID"))
	}

	video, err := c.service.GetVideoRecommendation(ctx.Context(), userId)
	if err != nil {
		if err.Error() == "user or subjects not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("User or subjects not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to get video recommendations"))
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"video": video,
		},
	})
}

func (c *recommendationController) GetCourseRecommendation(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid user ID"))
	}

	course, err := c.service.GetCourseRecommendation(ctx.Context(), userId)
	if err != nil {
		if err.Error() == "user not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("User not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to get course recommendations"))
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"course":  course,
	})
}

func (c *recommendationController) GetCareerTrends(ctx *fiber.Ctx) error {
	subject := ctx.Params("subject")

	trends := c.service.GetCareerTrends(ctx.Context(), subject)

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    trends,
	})
}
