package controller

import (
	"ai-subject-explorer-be/internal/dto"
	"ai-subject-explorer-be/internal/pkg/serverutils"
	"ai-subject-explorer-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const serviceVersion = "0.6.1"

type IExplorerController interface {
	RegisterRoutes(r fiber.Router)
	Info(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	SelectMenuItem(ctx *fiber.Ctx) error
	ReturnToMainMenu(ctx *fiber.Ctx) error
	GoBack(ctx *fiber.Ctx) error
}

type explorerController struct {
	service service.IExplorerService
}

func NewExplorerController(service service.IExplorerService) IExplorerController {
	return &explorerController{service: service}
}

func (c *explorerController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Info)
	r.Post("/sessions", c.CreateSession)
	r.Post("/menus", c.SelectMenuItem)
	r.Post("/main_menu", c.ReturnToMainMenu)
	r.Post("/go_back", c.GoBack)
}

func (c *explorerController) Info(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Service is running", dto.ServiceInfoResponse{
		Name:    "AI Subject Explorer Backend",
		Version: serviceVersion,
		Status:  "ok",
	}))
}

func (c *explorerController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *explorerController) SelectMenuItem(ctx *fiber.Ctx) error {
	var req dto.MenuSelectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SelectMenuItem(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success select menu item", res))
}

func (c *explorerController) ReturnToMainMenu(ctx *fiber.Ctx) error {
	var req dto.SessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ReturnToMainMenu(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success return to main menu", res))
}

func (c *explorerController) GoBack(ctx *fiber.Ctx) error {
	var req dto.SessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GoBack(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success go back", res))
}
