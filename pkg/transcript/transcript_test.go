package transcript

import (
	"sync"
	"testing"

	"ai-notetaking-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAppendsUserAndPending(t *testing.T) {
	tr := New(entity.NewAssistantMessage("hi"))

	id := tr.Submit("hello")

	msgs := tr.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, entity.MessageKindUser, msgs[1].Kind)
	assert.Equal(t, "hello", msgs[1].Text)
	assert.Equal(t, entity.MessageKindPending, msgs[2].Kind)
	assert.Equal(t, id, msgs[2].RequestId)
	assert.Equal(t, 1, tr.PendingCount())
}

func TestResolveReplacesMatchingPlaceholder(t *testing.T) {
	tr := New()
	id := tr.Submit("hello")

	ok := tr.Resolve(id, "X")

	require.True(t, ok)
	msgs := tr.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, entity.MessageKindUser, msgs[0].Kind)
	assert.Equal(t, entity.MessageKindAssistant, msgs[1].Kind)
	assert.Equal(t, "X", msgs[1].Text)
	assert.Zero(t, tr.PendingCount())
}

func TestResolveOutOfOrder(t *testing.T) {
	tr := New()
	first := tr.Submit("first")
	second := tr.Submit("second")

	require.True(t, tr.Resolve(second, "answer two"))
	require.True(t, tr.Resolve(first, "answer one"))

	msgs := tr.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "answer one", msgs[1].Text)
	assert.Equal(t, "second", msgs[2].Text)
	assert.Equal(t, "answer two", msgs[3].Text)
}

func TestResolveUnknownRequestIsDropped(t *testing.T) {
	tr := New()
	id := tr.Submit("hello")

	assert.False(t, tr.Resolve(uuid.New(), "stray"))
	assert.True(t, tr.Resolve(id, "ok"))
	assert.False(t, tr.Resolve(id, "again"), "a request resolves once")

	msgs := tr.Messages()
	assert.Equal(t, "ok", msgs[1].Text)
}

func TestConcurrentSubmitAndResolve(t *testing.T) {
	tr := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := tr.Submit("q")
			tr.Resolve(id, "a")
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, tr.Len())
	assert.Zero(t, tr.PendingCount())
}

func TestRegistryKeepsOneTranscriptPerSession(t *testing.T) {
	reg := NewRegistry(func() []entity.ChatMessage {
		return []entity.ChatMessage{entity.NewAssistantMessage("greeting")}
	})
	a, b := uuid.New(), uuid.New()

	ta := reg.Get(a)
	ta.Submit("hello")

	assert.Same(t, ta, reg.Get(a))
	assert.Equal(t, 1, reg.Get(b).Len())

	reg.Drop(a)
	_, ok := reg.Lookup(a)
	assert.False(t, ok)
	assert.Equal(t, 1, reg.Get(a).Len())
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		msg  entity.ChatMessage
		want string
	}{
		{
			name: "user text is escaped but newlines kept",
			msg:  entity.ChatMessage{Kind: entity.MessageKindUser, Text: "<b>a\nb</b>"},
			want: "&lt;b&gt;a\nb&lt;/b&gt;",
		},
		{
			name: "assistant newlines become line breaks",
			msg:  entity.ChatMessage{Kind: entity.MessageKindAssistant, Text: "- one\n- two"},
			want: "- one<br/>- two",
		},
		{
			name: "assistant markdown is left alone",
			msg:  entity.ChatMessage{Kind: entity.MessageKindAssistant, Text: "**bold**"},
			want: "**bold**",
		},
		{
			name: "pending shows indicator",
			msg:  entity.ChatMessage{Kind: entity.MessageKindPending},
			want: PendingIndicator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.msg))
		})
	}
}
