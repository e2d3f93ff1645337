package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai-notetaking-be/internal/entity"

	"github.com/google/uuid"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidItem       = errors.New("invalid item")
)

const (
	CollectionCourses     = "courses"
	CollectionTasks       = "tasks"
	CollectionNotes       = "notes"
	CollectionHabits      = "habits"
	CollectionGoals       = "goals"
	CollectionAssessments = "assessments"
)

var collections = map[string]struct{}{
	CollectionCourses:     {},
	CollectionTasks:       {},
	CollectionNotes:       {},
	CollectionHabits:      {},
	CollectionGoals:       {},
	CollectionAssessments: {},
}

// IWorkspaceService edits the six item collections of a user's document.
// Every successful mutation is persisted before it returns.
type IWorkspaceService interface {
	GetData(ctx context.Context, username string) (*entity.AppData, error)
	UpsertItem(ctx context.Context, username, collection string, raw []byte) (interface{}, error)
	DeleteItem(ctx context.Context, username, collection, id string) error
}

type workspaceService struct {
	profiles IProfileService
}

func NewWorkspaceService(profiles IProfileService) IWorkspaceService {
	return &workspaceService{profiles: profiles}
}

func (s *workspaceService) GetData(ctx context.Context, username string) (*entity.AppData, error) {
	return s.profiles.LoadOrSeed(ctx, username)
}

func (s *workspaceService) UpsertItem(ctx context.Context, username, collection string, raw []byte) (interface{}, error) {
	if _, ok := collections[collection]; !ok {
		return nil, ErrUnknownCollection
	}

	var saved interface{}
	_, err := s.profiles.Update(ctx, username, func(data *entity.AppData) error {
		switch collection {
		case CollectionCourses:
			item, err := decodeItem[entity.Course](raw)
			if err != nil {
				return err
			}
			item.Id = ensureId(item.Id)
			data.Courses = upsert(data.Courses, item, func(c entity.Course) string { return c.Id })
			saved = item

		case CollectionTasks:
			item, err := decodeItem[entity.Task](raw)
			if err != nil {
				return err
			}
			if item.Status == "" {
				item.Status = entity.TaskStatusTodo
			}
			switch item.Status {
			case entity.TaskStatusTodo, entity.TaskStatusInProgress, entity.TaskStatusDone:
			default:
				return fmt.Errorf("%w: unknown task status %q", ErrInvalidItem, item.Status)
			}
			item.Id = ensureId(item.Id)
			data.Tasks = upsert(data.Tasks, item, func(t entity.Task) string { return t.Id })
			saved = item

		case CollectionNotes:
			item, err := decodeItem[entity.Note](raw)
			if err != nil {
				return err
			}
			item.Id = ensureId(item.Id)
			data.Notes = upsert(data.Notes, item, func(n entity.Note) string { return n.Id })
			saved = item

		case CollectionHabits:
			item, err := decodeItem[entity.Habit](raw)
			if err != nil {
				return err
			}
			if item.Streak < 0 {
				return fmt.Errorf("%w: streak cannot be negative", ErrInvalidItem)
			}
			item.Id = ensureId(item.Id)
			data.Habits = upsert(data.Habits, item, func(h entity.Habit) string { return h.Id })
			saved = item

		case CollectionGoals:
			item, err := decodeItem[entity.Goal](raw)
			if err != nil {
				return err
			}
			if item.Progress < 0 || item.Progress > 100 {
				return fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidItem)
			}
			item.Id = ensureId(item.Id)
			data.Goals = upsert(data.Goals, item, func(g entity.Goal) string { return g.Id })
			saved = item

		case CollectionAssessments:
			item, err := decodeItem[entity.Assessment](raw)
			if err != nil {
				return err
			}
			if item.Type != entity.AssessmentTypeExam && item.Type != entity.AssessmentTypeQuiz {
				return fmt.Errorf("%w: unknown assessment type %q", ErrInvalidItem, item.Type)
			}
			item.Id = ensureId(item.Id)
			data.Assessments = upsert(data.Assessments, item, func(a entity.Assessment) string { return a.Id })
			saved = item
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *workspaceService) DeleteItem(ctx context.Context, username, collection, id string) error {
	if _, ok := collections[collection]; !ok {
		return ErrUnknownCollection
	}

	_, err := s.profiles.Update(ctx, username, func(data *entity.AppData) error {
		var found bool
		switch collection {
		case CollectionCourses:
			data.Courses, found = remove(data.Courses, id, func(c entity.Course) string { return c.Id })
		case CollectionTasks:
			data.Tasks, found = remove(data.Tasks, id, func(t entity.Task) string { return t.Id })
		case CollectionNotes:
			data.Notes, found = remove(data.Notes, id, func(n entity.Note) string { return n.Id })
		case CollectionHabits:
			data.Habits, found = remove(data.Habits, id, func(h entity.Habit) string { return h.Id })
		case CollectionGoals:
			data.Goals, found = remove(data.Goals, id, func(g entity.Goal) string { return g.Id })
		case CollectionAssessments:
			data.Assessments, found = remove(data.Assessments, id, func(a entity.Assessment) string { return a.Id })
		}
		if !found {
			return ErrItemNotFound
		}
		return nil
	})
	return err
}

func decodeItem[T any](raw []byte) (T, error) {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return item, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	return item, nil
}

func ensureId(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// upsert replaces the item with the same id in place, or appends it.
func upsert[T any](items []T, item T, idOf func(T) string) []T {
	for i := range items {
		if idOf(items[i]) == idOf(item) {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func remove[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i := range items {
		if idOf(items[i]) == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}
