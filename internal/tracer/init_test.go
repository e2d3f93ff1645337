package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleRatio(t *testing.T) {
	tests := []struct {
		env  string
		want float64
	}{
		{"", 1},
		{"0.25", 0.25},
		{"0", 0},
		{"1.5", 1},
		{"-1", 1},
		{"half", 1},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("OTEL_SAMPLE_RATIO", tt.env)
			assert.Equal(t, tt.want, sampleRatio())
		})
	}
}

func TestInitTracerDisabledIsNoop(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "")

	shutdown := InitTracer("eduai-test")
	assert.NoError(t, shutdown(context.Background()))
}
