package controller

import (
	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/pkg/serverutils"
	"ai-notetaking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	GetMessages(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{assistantService: assistantService}
}

func (c *assistantController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/assistant", jwtMiddleware)
	h.Get("/messages", c.GetMessages)
	h.Post("/messages", c.SendMessage)
}

func (c *assistantController) GetMessages(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromCtx(ctx)
	return ctx.JSON(serverutils.SuccessResponse("Success get messages", c.assistantService.Transcript(session.Id)))
}

// SendMessage answers right away with the pending placeholder in place; the
// reply arrives later over the websocket or on the next GetMessages.
func (c *assistantController) SendMessage(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromCtx(ctx)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.assistantService.Submit(ctx.UserContext(), session.Id, req.Text)
	if err != nil {
		return err
	}

	status := fiber.StatusAccepted
	if res.RequestId == nil {
		status = fiber.StatusOK
	}
	body := serverutils.SuccessResponse("Message accepted", res)
	body.Code = status
	return ctx.Status(status).JSON(body)
}
