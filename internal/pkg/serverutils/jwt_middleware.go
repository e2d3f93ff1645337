package serverutils

import (
	"context"

	"ai-notetaking-be/internal/constant"
	"ai-notetaking-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

const LocalsSession = "session"

// SessionResolver maps a signed token to a live session.
type SessionResolver interface {
	CurrentSession(ctx context.Context, token string) (*entity.Session, error)
}

// TokenFromRequest looks for the session token in the Authorization header,
// then the session cookie, then the "token" query parameter (websocket handshakes).
func TokenFromRequest(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	if cookie := ctx.Cookies(constant.SessionCookieName); cookie != "" {
		return cookie
	}
	return ctx.Query("token")
}

func JwtMiddleware(resolver SessionResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := TokenFromRequest(ctx)
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		session, err := resolver.CurrentSession(ctx.UserContext(), tokenStr)
		if err != nil || session == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		ctx.Locals(LocalsSession, session)
		return ctx.Next()
	}
}

// SessionFromCtx returns the session stored by JwtMiddleware, or nil.
func SessionFromCtx(ctx *fiber.Ctx) *entity.Session {
	session, _ := ctx.Locals(LocalsSession).(*entity.Session)
	return session
}
