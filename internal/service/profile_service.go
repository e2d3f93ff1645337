package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"ai-notetaking-be/internal/entity"
	"ai-notetaking-be/internal/pkg/logger"
	"ai-notetaking-be/internal/repository/contract"
)

var ErrProfileNotFound = errors.New("profile not found")

// IProfileService owns the per-username AppData document.
type IProfileService interface {
	LoadOrSeed(ctx context.Context, username string) (*entity.AppData, error)
	Get(ctx context.Context, username string) (*entity.AppData, error)
	Update(ctx context.Context, username string, mutate func(data *entity.AppData) error) (*entity.AppData, error)
}

type profileService struct {
	store     contract.KeyValueRepository
	namespace string
	logger    logger.ILogger

	// one lock per username; documents are read-modify-written as a whole
	locks sync.Map
}

func NewProfileService(store contract.KeyValueRepository, namespace string, log logger.ILogger) IProfileService {
	return &profileService{
		store:     store,
		namespace: namespace,
		logger:    log,
	}
}

// DataKey is the storage key of a user's document, e.g. "eduai_data_alice".
func DataKey(namespace, username string) string {
	return fmt.Sprintf("%s_data_%s", namespace, username)
}

func (s *profileService) lock(username string) func() {
	m, _ := s.locks.LoadOrStore(username, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *profileService) LoadOrSeed(ctx context.Context, username string) (*entity.AppData, error) {
	defer s.lock(username)()

	data, err := s.read(ctx, username)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	data = entity.NewDefaultAppData(username)
	if err := s.write(ctx, username, data); err != nil {
		return nil, err
	}

	s.logger.Info("ProfileService", "Seeded profile document", map[string]interface{}{"username": username})
	return data, nil
}

func (s *profileService) Get(ctx context.Context, username string) (*entity.AppData, error) {
	return s.read(ctx, username)
}

// Update applies mutate to the stored document and persists the result.
// Nothing is written when mutate fails.
func (s *profileService) Update(ctx context.Context, username string, mutate func(data *entity.AppData) error) (*entity.AppData, error) {
	defer s.lock(username)()

	data, err := s.read(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := mutate(data); err != nil {
		return nil, err
	}
	if err := s.write(ctx, username, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *profileService) read(ctx context.Context, username string) (*entity.AppData, error) {
	raw, err := s.store.Get(ctx, DataKey(s.namespace, username))
	if err != nil {
		if errors.Is(err, contract.ErrKeyNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to read profile document: %w", err)
	}

	var data entity.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode profile document: %w", err)
	}
	data.Normalize()
	return &data, nil
}

func (s *profileService) write(ctx context.Context, username string, data *entity.AppData) error {
	data.Normalize()
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode profile document: %w", err)
	}
	if err := s.store.Set(ctx, DataKey(s.namespace, username), raw); err != nil {
		return fmt.Errorf("failed to write profile document: %w", err)
	}
	return nil
}
