package controller

import (
	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/pkg/serverutils"
	"emerge-career-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Post("/register", c.Register)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Email and password are required"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Email and password are required"))
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		if err.Error() == "invalid email or password" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Invalid email or password"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Login failed"))
	}

	return ctx.JSON(serverutils.Merge(serverutils.SuccessResponse("Login successful"), fiber.Map{
		"userId":     res.UserId,
		"hasProfile": res.HasProfile,
	}))
}

// Logout exists for client symmetry; there is no server-side session to
// invalidate.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Logged out successfully"))
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Email and password are required"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		if err.Error() == "email already registered" {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Email already registered"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Registration failed"))
	}

	return ctx.JSON(serverutils.Merge(serverutils.SuccessResponse("Registration successful"), fiber.Map{
		"userId": res.UserId,
	}))
}
