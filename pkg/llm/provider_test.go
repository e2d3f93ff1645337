package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		o := ApplyOptions()
		assert.Nil(t, o.Temperature)
		assert.Zero(t, o.MaxTokens)
		assert.Empty(t, o.Model)
	})

	t.Run("explicit values", func(t *testing.T) {
		o := ApplyOptions(WithTemperature(0), WithModel("gemini-2.5-flash"), WithSystemInstruction("be kind"))
		require.NotNil(t, o.Temperature)
		assert.Equal(t, 0.0, *o.Temperature)
		assert.Equal(t, "gemini-2.5-flash", o.Model)
		assert.Equal(t, "be kind", o.SystemInstruction)
	})
}
