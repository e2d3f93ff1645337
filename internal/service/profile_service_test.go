package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ai-notetaking-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_LoadOrSeed(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()

	data, err := f.profiles.LoadOrSeed(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", data.Profile.Name)
	assert.Equal(t, "A", data.Profile.Avatar)
	assert.Equal(t, entity.ThemeDark, data.Settings.Theme)

	raw, err := f.store.Get(ctx, "eduai_data_alice")
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"courses", "tasks", "notes", "habits", "goals", "assessments"} {
		assert.JSONEq(t, `[]`, string(doc[key]), key)
	}

	t.Run("existing document is returned untouched", func(t *testing.T) {
		_, err := f.profiles.Update(ctx, "alice", func(d *entity.AppData) error {
			d.Profile.Age = "20"
			return nil
		})
		require.NoError(t, err)

		again, err := f.profiles.LoadOrSeed(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "20", again.Profile.Age)
	})
}

func TestProfileService_Get(t *testing.T) {
	f := newFixture(0)

	_, err := f.profiles.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_UpdateFailureWritesNothing(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()
	_, err := f.profiles.LoadOrSeed(ctx, "bob")
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = f.profiles.Update(ctx, "bob", func(d *entity.AppData) error {
		d.Profile.Name = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err := f.profiles.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", data.Profile.Name)
}
