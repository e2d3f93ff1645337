package mapper

import (
	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/entity"
)

func SessionToDTO(s *entity.Session) dto.SessionDTO {
	page := s.Page
	if page == "" {
		page = entity.PageDashboard
	}
	return dto.SessionDTO{
		Id:        s.Id,
		Username:  s.Username,
		Page:      string(page),
		CreatedAt: s.CreatedAt,
	}
}

func ToastToDTO(t *entity.Toast) *dto.ToastDTO {
	if t == nil {
		return nil
	}
	return &dto.ToastDTO{
		Message: t.Message,
		Type:    string(t.Type),
	}
}

// ProfileToSummary applies the sidebar fallbacks: "User" for a missing name
// and "U" for a missing avatar initial.
func ProfileToSummary(p entity.Profile) dto.ProfileSummaryDTO {
	name := p.Name
	if name == "" {
		name = "User"
	}
	avatar := p.Avatar
	if avatar == "" {
		avatar = "U"
	}
	return dto.ProfileSummaryDTO{
		Name:      name,
		Avatar:    avatar,
		AvatarUrl: p.AvatarUrl,
	}
}
