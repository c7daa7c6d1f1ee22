package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jruiz-dev/trendyshop/internal/common"
	"github.com/jruiz-dev/trendyshop/internal/logging"
	"github.com/jruiz-dev/trendyshop/internal/store/memory"
)

func newTestProvider(t *testing.T) (*Local, *memory.Memory) {
	t.Helper()
	st := memory.New()
	log := logging.NewJSONLogger(io.Discard, slog.LevelError)
	return NewLocal(st, log, []byte("test-secret"), time.Hour), st
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t)

	id, err := p.Register(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := p.Login(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)
	require.Equal(t, id, got)

	identity, email, ok := p.CurrentIdentity()
	require.True(t, ok)
	require.Equal(t, id, identity)
	require.Equal(t, "ana@example.com", email)
}

func TestRegister_EmailInUse(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t)

	_, err := p.Register(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)

	_, err = p.Register(ctx, "ana@example.com", []byte("another1"))
	require.ErrorIs(t, err, common.ErrEmailInUse)
}

func TestRegister_ShortPassword(t *testing.T) {
	p, _ := newTestProvider(t)

	_, err := p.Register(context.Background(), "ana@example.com", []byte("abc"))
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t)

	_, err := p.Register(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)

	_, err = p.Login(ctx, "ana@example.com", []byte("nope-nope"))
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, _, ok := p.CurrentIdentity()
	require.False(t, ok)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	p, _ := newTestProvider(t)

	_, err := p.Login(context.Background(), "ghost@example.com", []byte("whatever"))
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t)

	_, err := p.Logout(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)

	_, err = p.Register(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)
	_, err = p.Login(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)

	email, err := p.Logout(ctx)
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", email)

	_, _, ok := p.CurrentIdentity()
	require.False(t, ok)
}

func TestSessionExpiresAfterTokenValidity(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	log := logging.NewJSONLogger(io.Discard, slog.LevelError)
	p := NewLocal(st, log, []byte("test-secret"), time.Nanosecond)

	_, err := p.Register(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)
	_, err = p.Login(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, _, ok := p.CurrentIdentity()
	require.False(t, ok)
	require.ErrorIs(t, p.DeleteCurrentUser(ctx), common.ErrNoSession)
	_, err = p.Logout(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestSessionSurvivesWithinTokenValidity(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t)

	id, err := p.Register(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)
	_, err = p.Login(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)

	identity, _, ok := p.CurrentIdentity()
	require.True(t, ok)
	require.Equal(t, id, identity)
}

func TestSendPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	p, _ := newTestProvider(t)
	require.NoError(t, p.SendPasswordReset(context.Background(), "ghost@example.com"))
}

func TestSendPasswordReset_StoresToken(t *testing.T) {
	ctx := context.Background()
	p, st := newTestProvider(t)

	id, err := p.Register(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)

	require.NoError(t, p.SendPasswordReset(ctx, "ana@example.com"))

	doc, err := st.Get(ctx, "credentials", id)
	require.NoError(t, err)
	token, _ := doc["reset_token"].(string)
	require.Len(t, token, 32)
}

func TestDeleteCurrentUser(t *testing.T) {
	ctx := context.Background()
	p, st := newTestProvider(t)

	require.ErrorIs(t, p.DeleteCurrentUser(ctx), common.ErrNoSession)

	id, err := p.Register(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)
	_, err = p.Login(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)

	require.NoError(t, p.DeleteCurrentUser(ctx))

	_, err = st.Get(ctx, "credentials", id)
	require.ErrorIs(t, err, common.ErrNotFound)
	_, _, ok := p.CurrentIdentity()
	require.False(t, ok)
}

func TestDeleteIdentity_ClosesMatchingSession(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t)

	id, err := p.Register(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)
	_, err = p.Login(ctx, "ana@example.com", []byte("secret1"))
	require.NoError(t, err)

	require.NoError(t, p.DeleteIdentity(ctx, id))
	_, _, ok := p.CurrentIdentity()
	require.False(t, ok)
}
