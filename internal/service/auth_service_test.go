package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"ai-notetaking-be/internal/constant"
	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_LoginPasswordLength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"five chars", "12345", true},
		{"six chars", "123456", false},
		{"eight chars", "12345678", false},
		{"nine chars", "123456789", true},
		{"empty", "", true},
		{"six multibyte chars", "ññññññ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(0)
			res, err := f.auth.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: tt.password})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPassword)
				assert.Equal(t, "Password must be between 6 and 8 characters.", err.Error())
				assert.Nil(t, res)
				assert.Empty(t, f.events.published())
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, res.AccessToken)
		})
	}
}

func TestAuthService_LoginRequiresUsername(t *testing.T) {
	f := newFixture(0)
	_, err := f.auth.Login(context.Background(), &dto.LoginRequest{Username: "   ", Password: "123456"})
	assert.ErrorIs(t, err, ErrUsernameRequired)
}

func TestAuthService_LoginKeepsUsernameAsTyped(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{"plain", "alice"},
		{"space padded", "  bob "},
		{"long", strings.Repeat("x", 200)},
		{"unicode", "សុភា"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(0)
			ctx := context.Background()

			res, err := f.auth.Login(ctx, &dto.LoginRequest{Username: tt.username, Password: "123456"})
			require.NoError(t, err)
			assert.Equal(t, tt.username, res.Session.Username)

			raw, err := f.store.Get(ctx, DataKey(testNamespace, tt.username))
			require.NoError(t, err)
			assert.NotEmpty(t, raw)

			toast, ok := f.toasts.Current(res.Session.Id)
			require.True(t, ok)
			assert.Equal(t, "Welcome back, "+tt.username+"!", toast.Message)
		})
	}
}

func TestAuthService_ExpiredSessionDropsTranscript(t *testing.T) {
	f := newFixtureWithSessionTTL(0, 20*time.Millisecond)
	ctx := context.Background()

	res, err := f.auth.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "123456"})
	require.NoError(t, err)
	_, err = f.assistant.Submit(ctx, res.Session.Id, "hello")
	require.NoError(t, err)

	registry := f.assistant.(*assistantService).registry
	_, held := registry.Lookup(res.Session.Id)
	require.True(t, held)

	assert.Eventually(t, func() bool {
		_, held := registry.Lookup(res.Session.Id)
		return !held
	}, time.Second, 10*time.Millisecond)

	_, err = f.auth.CurrentSession(ctx, res.AccessToken)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()

	res, err := f.auth.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Session.Username)
	assert.Equal(t, string(entity.PageDashboard), res.Session.Page)

	session, err := f.auth.CurrentSession(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.Session.Id, session.Id)

	data, err := f.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "A", data.Profile.Avatar)

	toast, ok := f.toasts.Current(session.Id)
	require.True(t, ok)
	assert.Equal(t, "Welcome back, alice!", toast.Message)
	assert.Equal(t, entity.ToastSuccess, toast.Type)

	assert.Equal(t, []string{constant.EventUserLogin}, f.events.published())
}

func TestAuthService_LoginWaitsAndHonoursCancellation(t *testing.T) {
	f := newFixture(50 * time.Millisecond)

	start := time.Now()
	_, err := f.auth.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "123456"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.auth.Login(ctx, &dto.LoginRequest{Username: "bob", Password: "123456"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = f.profiles.Get(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestAuthService_Logout(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()

	res, err := f.auth.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "123456"})
	require.NoError(t, err)
	session, err := f.auth.CurrentSession(ctx, res.AccessToken)
	require.NoError(t, err)

	_, err = f.assistant.Submit(ctx, session.Id, "hello")
	require.NoError(t, err)

	key := DataKey(testNamespace, "alice")
	before, err := f.store.Get(ctx, key)
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx, session))

	after, err := f.store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, err = f.auth.CurrentSession(ctx, res.AccessToken)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, f.auth.Logout(ctx, session), ErrSessionNotFound)

	// transcript is gone, the document is not
	assert.Len(t, f.assistant.Transcript(session.Id), 1)
	_, err = f.profiles.Get(ctx, "alice")
	assert.NoError(t, err)

	assert.Contains(t, f.events.published(), constant.EventUserLogout)
}

func TestAuthService_CurrentSessionRejectsForeignTokens(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()

	res, err := f.auth.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "123456"})
	require.NoError(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"session_id": res.Session.Id.String()})
	signed, err := forged.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = f.auth.CurrentSession(ctx, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.auth.CurrentSession(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
