package service

import (
	"context"
	"fmt"

	"ai-notetaking-be/internal/constant"
	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/entity"
	"ai-notetaking-be/internal/mapper"
	"ai-notetaking-be/internal/repository/contract"

	"github.com/google/uuid"
)

const EventToast = "toast"

// IShellService composes what the application frame shows: sidebar, page
// header, profile summary, theme and the transient toast.
type IShellService interface {
	Shell(ctx context.Context, session *entity.Session, page string) (*dto.ShellResponse, error)
	Notify(sessionId uuid.UUID, toast entity.Toast)
}

type shellService struct {
	profiles IProfileService
	themes   IThemeService
	sessions contract.SessionRepository
	toasts   contract.ToastRepository
	delivery SessionDelivery
}

func NewShellService(
	profiles IProfileService,
	themes IThemeService,
	sessions contract.SessionRepository,
	toasts contract.ToastRepository,
	delivery SessionDelivery,
) IShellService {
	return &shellService{
		profiles: profiles,
		themes:   themes,
		sessions: sessions,
		toasts:   toasts,
		delivery: delivery,
	}
}

// Shell renders the frame for page. An empty page keeps the session's current
// page; an unknown one falls back to the dashboard. The chosen page is remembered.
func (s *shellService) Shell(ctx context.Context, session *entity.Session, page string) (*dto.ShellResponse, error) {
	current := session.Page
	if page != "" {
		current = entity.ParsePage(page)
	}
	if current == "" {
		current = entity.PageDashboard
	}
	if current != session.Page {
		updated := *session
		updated.Page = current
		s.sessions.Save(&updated)
	}

	data, err := s.profiles.LoadOrSeed(ctx, session.Username)
	if err != nil {
		return nil, err
	}

	theme, err := s.themes.Current(ctx)
	if err != nil {
		return nil, err
	}

	descriptor := current.Describe()
	if current == entity.PageDashboard {
		descriptor.Subtitle = fmt.Sprintf(constant.WelcomeMessageFormat, data.Profile.Name)
	}

	nav := make([]dto.NavItemDTO, 0, len(entity.Pages))
	for _, p := range entity.Pages {
		d := p.Describe()
		nav = append(nav, dto.NavItemDTO{
			Page:   string(p),
			Label:  d.Label,
			Icon:   d.Icon,
			Active: p == current,
		})
	}

	res := &dto.ShellResponse{
		Page: dto.PageDTO{
			Page:     string(current),
			Title:    descriptor.Title,
			Subtitle: descriptor.Subtitle,
			Icon:     descriptor.Icon,
		},
		Nav:     nav,
		Profile: mapper.ProfileToSummary(data.Profile),
		Theme:   string(theme),
	}
	if toast, ok := s.toasts.Current(session.Id); ok {
		res.Toast = mapper.ToastToDTO(toast)
	}
	return res, nil
}

// Notify replaces the session's toast. It disappears on its own once the toast TTL passes.
func (s *shellService) Notify(sessionId uuid.UUID, toast entity.Toast) {
	s.toasts.Put(sessionId, toast)
	if s.delivery != nil {
		s.delivery.Deliver(sessionId, EventToast, mapper.ToastToDTO(&toast))
	}
}
