package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/pkg/logger"
	"ai-notetaking-be/internal/repository/memory"
	"ai-notetaking-be/pkg/events"

	"github.com/google/uuid"
)

const testNamespace = "eduai"

type recordingPublisher struct {
	mu       sync.Mutex
	messages []dto.AssistantPromptMessage
	fail     bool
}

func (p *recordingPublisher) SendMessage(_ context.Context, payload interface{}) error {
	if p.fail {
		return errors.New("bus down")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, payload.(dto.AssistantPromptMessage))
	return nil
}

func (p *recordingPublisher) sent() []dto.AssistantPromptMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]dto.AssistantPromptMessage(nil), p.messages...)
}

type recordingEvents struct {
	mu    sync.Mutex
	types []string
}

func (e *recordingEvents) Publish(_ context.Context, event events.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.types = append(e.types, event.EventType())
	return nil
}

func (e *recordingEvents) published() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.types...)
}

type delivered struct {
	SessionId uuid.UUID
	EventType string
	Data      interface{}
}

type recordingDelivery struct {
	mu    sync.Mutex
	items []delivered
}

func (d *recordingDelivery) Deliver(sessionId uuid.UUID, eventType string, data interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items = append(d.items, delivered{SessionId: sessionId, EventType: eventType, Data: data})
}

func (d *recordingDelivery) Broadcast(eventType string, data interface{}) {
	d.Deliver(uuid.Nil, eventType, data)
}

func (d *recordingDelivery) all() []delivered {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]delivered(nil), d.items...)
}

type fixture struct {
	store     *memory.KeyValueRepository
	sessions  *memory.SessionRepository
	toasts    *memory.ToastRepository
	publisher *recordingPublisher
	events    *recordingEvents
	delivery  *recordingDelivery

	profiles  IProfileService
	themes    IThemeService
	workspace IWorkspaceService
	shell     IShellService
	assistant IAssistantService
	auth      IAuthService
}

func newFixture(loginDelay time.Duration) *fixture {
	return newFixtureWithSessionTTL(loginDelay, time.Hour)
}

func newFixtureWithSessionTTL(loginDelay, sessionTTL time.Duration) *fixture {
	log := logger.NewNopLogger()
	f := &fixture{
		store:     memory.NewKeyValueRepository(),
		sessions:  memory.NewSessionRepository(sessionTTL),
		toasts:    memory.NewToastRepository(time.Hour),
		publisher: &recordingPublisher{},
		events:    &recordingEvents{},
		delivery:  &recordingDelivery{},
	}
	f.profiles = NewProfileService(f.store, testNamespace, log)
	f.themes = NewThemeService(f.store, testNamespace, f.delivery)
	f.workspace = NewWorkspaceService(f.profiles)
	f.shell = NewShellService(f.profiles, f.themes, f.sessions, f.toasts, f.delivery)
	f.assistant = NewAssistantService(f.publisher, f.events, f.delivery, log)
	f.auth = NewAuthService(f.sessions, f.profiles, f.shell, f.assistant, f.events, log, AuthOptions{
		JwtSecret:  "test-secret",
		LoginDelay: loginDelay,
		TokenTTL:   time.Hour,
	})
	return f
}

func newShortToasts() *memory.ToastRepository {
	return memory.NewToastRepository(50 * time.Millisecond)
}

func loggerForTests() logger.ILogger {
	return logger.NewNopLogger()
}
