package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_NewAndGet(t *testing.T) {
	st := NewStore(&Config{CookieName: "test_session", TTL: time.Hour})

	s := st.New()
	require.NotEmpty(t, s.ID())

	got, ok := st.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)
}

func TestStore_GetUnknownID(t *testing.T) {
	st := NewStore(&Config{TTL: time.Hour})

	_, ok := st.Get("no-such-session")
	assert.False(t, ok)
}

func TestStore_Defaults(t *testing.T) {
	st := NewStore(&Config{})

	assert.Equal(t, "workopia_session", st.CookieName())
	assert.Equal(t, 24*time.Hour, st.TTL())
}

func TestStore_ExpiredSessionDropped(t *testing.T) {
	st := NewStore(&Config{TTL: time.Hour})

	s := st.New()
	s.mu.Lock()
	s.expiresAt = time.Now().Add(-time.Minute)
	s.mu.Unlock()

	_, ok := st.Get(s.ID())
	assert.False(t, ok)

	// dropped entirely, not just rejected once
	_, ok = st.Get(s.ID())
	assert.False(t, ok)
}

func TestStore_GetSlidesExpiry(t *testing.T) {
	st := NewStore(&Config{TTL: time.Hour})

	s := st.New()
	s.mu.Lock()
	s.expiresAt = time.Now().Add(time.Minute)
	s.mu.Unlock()

	_, ok := st.Get(s.ID())
	require.True(t, ok)

	s.mu.Lock()
	remaining := time.Until(s.expiresAt)
	s.mu.Unlock()

	assert.Greater(t, remaining, 30*time.Minute)
}

func TestStore_Destroy(t *testing.T) {
	st := NewStore(&Config{TTL: time.Hour})

	s := st.New()
	st.Destroy(s.ID())

	_, ok := st.Get(s.ID())
	assert.False(t, ok)
}

func TestSession_UserLifecycle(t *testing.T) {
	st := NewStore(&Config{TTL: time.Hour})
	s := st.New()

	assert.Equal(t, int64(0), s.UserID())

	s.SetUser(7)
	assert.Equal(t, int64(7), s.UserID())

	s.ClearUser()
	assert.Equal(t, int64(0), s.UserID())
}

func TestSession_FlashesPopOnce(t *testing.T) {
	st := NewStore(&Config{TTL: time.Hour})
	s := st.New()

	s.SetFlash(FlashSuccess, "Listing created successfully")
	s.SetFlash(FlashError, "Something went wrong")

	flashes := s.PopFlashes()
	require.Len(t, flashes, 2)
	assert.Equal(t, Flash{Kind: FlashSuccess, Message: "Listing created successfully"}, flashes[0])
	assert.Equal(t, Flash{Kind: FlashError, Message: "Something went wrong"}, flashes[1])

	assert.Empty(t, s.PopFlashes())
}

func TestSession_ClearUserKeepsFlashes(t *testing.T) {
	st := NewStore(&Config{TTL: time.Hour})
	s := st.New()

	s.SetUser(7)
	s.SetFlash(FlashSuccess, "You have been signed out")
	s.ClearUser()

	flashes := s.PopFlashes()
	require.Len(t, flashes, 1)
	assert.Equal(t, "You have been signed out", flashes[0].Message)
}
