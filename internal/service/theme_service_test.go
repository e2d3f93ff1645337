package service

import (
	"context"
	"testing"

	"ai-notetaking-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeService(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to dark", func(t *testing.T) {
		f := newFixture(0)
		theme, err := f.themes.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.ThemeDark, theme)
	})

	t.Run("toggle flips and persists", func(t *testing.T) {
		f := newFixture(0)

		theme, err := f.themes.Toggle(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.ThemeLight, theme)

		raw, err := f.store.Get(ctx, "eduai_theme")
		require.NoError(t, err)
		assert.JSONEq(t, `"light"`, string(raw))

		theme, err = f.themes.Toggle(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.ThemeDark, theme)

		raw, err = f.store.Get(ctx, "eduai_theme")
		require.NoError(t, err)
		assert.Equal(t, `"dark"`, string(raw))

		pushed := f.delivery.all()
		require.Len(t, pushed, 2)
		assert.Equal(t, EventTheme, pushed[0].EventType)
	})

	t.Run("garbage is read as the default", func(t *testing.T) {
		f := newFixture(0)
		require.NoError(t, f.store.Set(ctx, "eduai_theme", []byte(`"sepia"`)))

		theme, err := f.themes.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.ThemeDark, theme)

		theme, err = f.themes.Toggle(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.ThemeLight, theme)
	})
}
