package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/entity"
	"ai-notetaking-be/internal/repository/contract"
)

// IThemeService reads and flips the stored color scheme. The preference is
// shared by everyone using this deployment, not kept per user.
type IThemeService interface {
	Current(ctx context.Context) (entity.Theme, error)
	Toggle(ctx context.Context) (entity.Theme, error)
}

const EventTheme = "theme"

type themeService struct {
	store       contract.KeyValueRepository
	key         string
	broadcaster Broadcaster
	mu          sync.Mutex
}

// NewThemeService builds the service; broadcaster may be nil.
func NewThemeService(store contract.KeyValueRepository, namespace string, broadcaster Broadcaster) IThemeService {
	return &themeService{
		store:       store,
		key:         ThemeKey(namespace),
		broadcaster: broadcaster,
	}
}

// ThemeKey is the storage key of the theme preference, e.g. "eduai_theme".
func ThemeKey(namespace string) string {
	return namespace + "_theme"
}

func (s *themeService) Current(ctx context.Context) (entity.Theme, error) {
	raw, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, contract.ErrKeyNotFound) {
			return entity.DefaultTheme, nil
		}
		return "", fmt.Errorf("failed to read theme: %w", err)
	}

	var theme entity.Theme
	if err := json.Unmarshal(raw, &theme); err != nil || !theme.Valid() {
		return entity.DefaultTheme, nil
	}
	return theme, nil
}

func (s *themeService) Toggle(ctx context.Context) (entity.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Current(ctx)
	if err != nil {
		return "", err
	}

	next := current.Toggled()
	raw, _ := json.Marshal(next)
	if err := s.store.Set(ctx, s.key, raw); err != nil {
		return "", fmt.Errorf("failed to write theme: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(EventTheme, dto.ThemeResponse{Theme: string(next)})
	}
	return next, nil
}
