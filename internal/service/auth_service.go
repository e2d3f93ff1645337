package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ai-notetaking-be/internal/constant"
	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/entity"
	"ai-notetaking-be/internal/mapper"
	"ai-notetaking-be/internal/pkg/logger"
	"ai-notetaking-be/internal/repository/contract"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidPassword  = errors.New(constant.PasswordLengthMessage)
	ErrUsernameRequired = errors.New("username is required")
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidToken     = errors.New("invalid token")
)

// IAuthService gates the application behind a demo login. No credential is
// verified: any username with a 6 to 8 character password gets a session.
type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, session *entity.Session) error
	CurrentSession(ctx context.Context, token string) (*entity.Session, error)
}

type AuthOptions struct {
	JwtSecret  string
	LoginDelay time.Duration
	TokenTTL   time.Duration
}

type authService struct {
	sessions       contract.SessionRepository
	profiles       IProfileService
	shell          IShellService
	assistant      IAssistantService
	eventPublisher IEventPublisher
	logger         logger.ILogger
	opts           AuthOptions
}

func NewAuthService(
	sessions contract.SessionRepository,
	profiles IProfileService,
	shell IShellService,
	assistant IAssistantService,
	eventPublisher IEventPublisher,
	log logger.ILogger,
	opts AuthOptions,
) IAuthService {
	if opts.JwtSecret == "" {
		opts.JwtSecret = "default_secret"
	}
	// an expired session takes its transcript with it
	sessions.OnRemoved(assistant.Reset)

	return &authService{
		sessions:       sessions,
		profiles:       profiles,
		shell:          shell,
		assistant:      assistant,
		eventPublisher: eventPublisher,
		logger:         log,
		opts:           opts,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. Validate before waiting
	// kept as typed; trimming only decides emptiness
	username := req.Username
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}
	if n := utf8.RuneCountInString(req.Password); n < constant.PasswordMinLength || n > constant.PasswordMaxLength {
		return nil, ErrInvalidPassword
	}

	// 2. Simulated sign-in latency
	if s.opts.LoginDelay > 0 {
		timer := time.NewTimer(s.opts.LoginDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	// 3. Session
	session := &entity.Session{
		Id:        uuid.New(),
		Username:  username,
		Page:      entity.PageDashboard,
		CreatedAt: time.Now(),
	}
	s.sessions.Save(session)

	// 4. Profile document, seeded on first login
	if _, err := s.profiles.LoadOrSeed(ctx, username); err != nil {
		s.sessions.Delete(session.Id)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	// 5. Welcome toast
	s.shell.Notify(session.Id, entity.Toast{
		Message: fmt.Sprintf(constant.WelcomeMessageFormat, username),
		Type:    entity.ToastSuccess,
	})

	// 6. Token
	signedToken, err := s.signToken(session)
	if err != nil {
		s.sessions.Delete(session.Id)
		return nil, err
	}

	publishEvent(ctx, s.eventPublisher, s.logger, constant.EventUserLogin, map[string]interface{}{
		"session_id": session.Id.String(),
		"username":   username,
		"time":       session.CreatedAt.Format(time.RFC822),
	})

	s.logger.Info("AuthService", "User logged in", map[string]interface{}{
		"session_id": session.Id,
		"username":   username,
	})

	return &dto.LoginResponse{
		AccessToken: signedToken,
		Session:     mapper.SessionToDTO(session),
	}, nil
}

// Logout ends the session and discards its chat transcript. The stored
// profile document is left as is.
func (s *authService) Logout(ctx context.Context, session *entity.Session) error {
	if _, ok := s.sessions.Get(session.Id); !ok {
		return ErrSessionNotFound
	}

	s.sessions.Delete(session.Id)
	s.assistant.Reset(session.Id)

	publishEvent(ctx, s.eventPublisher, s.logger, constant.EventUserLogout, map[string]interface{}{
		"session_id": session.Id.String(),
		"username":   session.Username,
	})

	s.logger.Info("AuthService", "User logged out", map[string]interface{}{
		"session_id": session.Id,
		"username":   session.Username,
	})
	return nil
}

func (s *authService) CurrentSession(_ context.Context, tokenStr string) (*entity.Session, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.opts.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sessionIdStr, ok := claims["session_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	sessionId, err := uuid.Parse(sessionIdStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	session, ok := s.sessions.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *authService) signToken(session *entity.Session) (string, error) {
	claims := jwt.MapClaims{
		"session_id": session.Id.String(),
		"username":   session.Username,
		"iat":        session.CreatedAt.Unix(),
	}
	if s.opts.TokenTTL > 0 {
		claims["exp"] = session.CreatedAt.Add(s.opts.TokenTTL).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.opts.JwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signedToken, nil
}
