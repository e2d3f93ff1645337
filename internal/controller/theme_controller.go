package controller

import (
	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/pkg/serverutils"
	"ai-notetaking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IThemeController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Show(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
}

type themeController struct {
	themeService service.IThemeService
}

func NewThemeController(themeService service.IThemeService) IThemeController {
	return &themeController{themeService: themeService}
}

func (c *themeController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/theme")
	// the login page is themed too
	h.Get("", c.Show)
	h.Post("/toggle", jwtMiddleware, c.Toggle)
}

func (c *themeController) Show(ctx *fiber.Ctx) error {
	theme, err := c.themeService.Current(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get theme", dto.ThemeResponse{Theme: string(theme)}))
}

func (c *themeController) Toggle(ctx *fiber.Ctx) error {
	theme, err := c.themeService.Toggle(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle theme", dto.ThemeResponse{Theme: string(theme)}))
}
