package service

import (
	"context"
	"testing"

	"ai-notetaking-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceService_Upsert(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()
	_, err := f.workspace.GetData(ctx, "alice")
	require.NoError(t, err)

	saved, err := f.workspace.UpsertItem(ctx, "alice", CollectionTasks, []byte(`{"title":"Essay","courseId":"missing-course"}`))
	require.NoError(t, err)

	task := saved.(entity.Task)
	assert.NotEmpty(t, task.Id)
	assert.Equal(t, entity.TaskStatusTodo, task.Status)

	// same id replaces in place
	_, err = f.workspace.UpsertItem(ctx, "alice", CollectionTasks, []byte(`{"id":"`+task.Id+`","title":"Essay v2","status":"done"}`))
	require.NoError(t, err)

	data, err := f.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, data.Tasks, 1)
	assert.Equal(t, "Essay v2", data.Tasks[0].Title)
	assert.Equal(t, entity.TaskStatusDone, data.Tasks[0].Status)
}

func TestWorkspaceService_UpsertRejects(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()
	_, err := f.workspace.GetData(ctx, "alice")
	require.NoError(t, err)

	tests := []struct {
		name       string
		collection string
		body       string
		wantErr    error
	}{
		{"unknown collection", "grades", `{}`, ErrUnknownCollection},
		{"bad task status", CollectionTasks, `{"title":"x","status":"later"}`, ErrInvalidItem},
		{"bad assessment type", CollectionAssessments, `{"type":"midterm"}`, ErrInvalidItem},
		{"goal progress out of range", CollectionGoals, `{"title":"x","progress":150}`, ErrInvalidItem},
		{"malformed json", CollectionNotes, `{"title":`, ErrInvalidItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.workspace.UpsertItem(ctx, "alice", tt.collection, []byte(tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	data, err := f.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, data.Tasks)
	assert.Empty(t, data.Assessments)
	assert.Empty(t, data.Goals)
}

func TestWorkspaceService_Delete(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()
	_, err := f.workspace.GetData(ctx, "alice")
	require.NoError(t, err)

	_, err = f.workspace.UpsertItem(ctx, "alice", CollectionCourses, []byte(`{"id":"c1","name":"Physics","code":"PHY101"}`))
	require.NoError(t, err)

	require.NoError(t, f.workspace.DeleteItem(ctx, "alice", CollectionCourses, "c1"))
	assert.ErrorIs(t, f.workspace.DeleteItem(ctx, "alice", CollectionCourses, "c1"), ErrItemNotFound)
	assert.ErrorIs(t, f.workspace.DeleteItem(ctx, "alice", "grades", "c1"), ErrUnknownCollection)

	data, err := f.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, data.Courses)
}
