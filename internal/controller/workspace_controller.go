package controller

import (
	"errors"

	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/pkg/serverutils"
	"ai-notetaking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWorkspaceController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Show(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type workspaceController struct {
	workspaceService service.IWorkspaceService
}

func NewWorkspaceController(workspaceService service.IWorkspaceService) IWorkspaceController {
	return &workspaceController{workspaceService: workspaceService}
}

func (c *workspaceController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/data", jwtMiddleware)
	h.Get("", c.Show)
	h.Put(":collection", c.Upsert)
	h.Delete(":collection/:id", c.Delete)
}

func (c *workspaceController) Show(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromCtx(ctx)

	data, err := c.workspaceService.GetData(ctx.UserContext(), session.Username)
	if err != nil {
		return workspaceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get data", data))
}

// Upsert takes the item itself as the request body. Items without an id are
// created; items with a known id are replaced.
func (c *workspaceController) Upsert(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromCtx(ctx)

	body := ctx.Body()
	if len(body) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Request body is required")
	}

	item, err := c.workspaceService.UpsertItem(ctx.UserContext(), session.Username, ctx.Params("collection"), body)
	if err != nil {
		return workspaceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save item", item))
}

func (c *workspaceController) Delete(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromCtx(ctx)
	collection := ctx.Params("collection")
	id := ctx.Params("id")

	if err := c.workspaceService.DeleteItem(ctx.UserContext(), session.Username, collection, id); err != nil {
		return workspaceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete item", dto.DeleteItemResponse{Collection: collection, Id: id}))
}

func workspaceError(err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownCollection),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrProfileNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidItem):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}
