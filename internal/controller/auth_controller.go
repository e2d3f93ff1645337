package controller

import (
	"errors"

	"ai-notetaking-be/internal/constant"
	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/mapper"
	"ai-notetaking-be/internal/pkg/serverutils"
	"ai-notetaking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", jwtMiddleware, c.Logout)
	h.Get("/me", jwtMiddleware, c.Me)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) || errors.Is(err, service.ErrUsernameRequired) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	// no Expires: the cookie lives as long as the browser session
	ctx.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    res.AccessToken,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ctx.JSON(serverutils.SuccessResponse("Login success", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromCtx(ctx)

	if err := c.service.Logout(ctx.UserContext(), session); err != nil && !errors.Is(err, service.ErrSessionNotFound) {
		return err
	}

	ctx.ClearCookie(constant.SessionCookieName)
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out successfully", nil))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromCtx(ctx)
	return ctx.JSON(serverutils.SuccessResponse("Success get session", mapper.SessionToDTO(session)))
}
