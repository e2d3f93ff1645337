package controller

import (
	"ai-notetaking-be/internal/pkg/serverutils"
	"ai-notetaking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IShellController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Show(ctx *fiber.Ctx) error
}

type shellController struct {
	shellService service.IShellService
}

func NewShellController(shellService service.IShellService) IShellController {
	return &shellController{shellService: shellService}
}

func (c *shellController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	r.Get("/shell", jwtMiddleware, c.Show)
}

func (c *shellController) Show(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromCtx(ctx)

	res, err := c.shellService.Shell(ctx.UserContext(), session, ctx.Query("page"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get shell", res))
}
