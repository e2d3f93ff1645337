package handler

import (
	"time"

	"ai-notetaking-be/internal/constant"
	"ai-notetaking-be/internal/pkg/serverutils"
	"ai-notetaking-be/internal/service"
	"ai-notetaking-be/internal/web"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the HTML shell: the login form without a live session,
// the application frame with one.
type PageHandler struct {
	auth      service.IAuthService
	shell     service.IShellService
	assistant service.IAssistantService
	themes    service.IThemeService
	toastTTL  time.Duration
}

func NewPageHandler(
	auth service.IAuthService,
	shell service.IShellService,
	assistant service.IAssistantService,
	themes service.IThemeService,
	toastTTL time.Duration,
) *PageHandler {
	return &PageHandler{
		auth:      auth,
		shell:     shell,
		assistant: assistant,
		themes:    themes,
		toastTTL:  toastTTL,
	}
}

func (h *PageHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.Index)
}

func (h *PageHandler) Index(c *fiber.Ctx) error {
	c.Type("html", "utf-8")

	tokenStr := serverutils.TokenFromRequest(c)
	session, err := h.auth.CurrentSession(c.UserContext(), tokenStr)
	if tokenStr == "" || err != nil {
		theme, err := h.themes.Current(c.UserContext())
		if err != nil {
			return err
		}
		return web.RenderLogin(c, web.LoginView{AppName: "EduAI", Theme: string(theme)})
	}

	shell, err := h.shell.Shell(c.UserContext(), session, c.Query("page"))
	if err != nil {
		return err
	}

	return web.RenderApp(c, web.AppView{
		AppName:       "EduAI",
		AssistantName: constant.AssistantName,
		Shell:         shell,
		Messages:      h.assistant.Transcript(session.Id),
		ToastTTLMs:    h.toastTTL.Milliseconds(),
	})
}
