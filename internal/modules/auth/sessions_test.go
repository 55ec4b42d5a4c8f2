package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"placementhub/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    7,
		Name:  "Test User",
		Email: "user@example.com",
		Role:  domain.RoleStaff,
	}
}

func TestSessionManager_CreateAndGet(t *testing.T) {
	m := NewSessionManager(time.Hour)

	sess, err := m.Create(testUser())
	assert.NoError(t, err)
	assert.Len(t, sess.Token, 64) // 32 random bytes, hex encoded

	got, ok := m.Get(sess.Token)
	assert.True(t, ok)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "user@example.com", got.Email)
	assert.Equal(t, domain.RoleStaff, got.Role)
}

func TestSessionManager_TokensAreUnique(t *testing.T) {
	m := NewSessionManager(time.Hour)

	first, err := m.Create(testUser())
	assert.NoError(t, err)
	second, err := m.Create(testUser())
	assert.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)

	// Both sessions stay valid independently.
	_, ok := m.Get(first.Token)
	assert.True(t, ok)
	_, ok = m.Get(second.Token)
	assert.True(t, ok)
}

func TestSessionManager_GetUnknownToken(t *testing.T) {
	m := NewSessionManager(time.Hour)

	_, ok := m.Get("no-such-token")
	assert.False(t, ok)

	_, ok = m.Get("")
	assert.False(t, ok)
}

func TestSessionManager_ExpiryRemovesOnLookup(t *testing.T) {
	m := NewSessionManager(time.Hour)

	current := time.Now()
	m.now = func() time.Time { return current }

	sess, err := m.Create(testUser())
	assert.NoError(t, err)

	// Still valid just before the deadline.
	current = current.Add(time.Hour - time.Second)
	_, ok := m.Get(sess.Token)
	assert.True(t, ok)

	// Expired once the TTL passes, and the entry is gone afterwards.
	current = current.Add(2 * time.Second)
	_, ok = m.Get(sess.Token)
	assert.False(t, ok)

	current = current.Add(-time.Hour)
	_, ok = m.Get(sess.Token)
	assert.False(t, ok)
}

func TestSessionManager_DestroyIsIdempotent(t *testing.T) {
	m := NewSessionManager(time.Hour)

	sess, err := m.Create(testUser())
	assert.NoError(t, err)

	m.Destroy(sess.Token)
	_, ok := m.Get(sess.Token)
	assert.False(t, ok)

	// Destroying again, or destroying garbage, must not panic or error.
	m.Destroy(sess.Token)
	m.Destroy("never-existed")
}

func TestSessionManager_PurgeExpired(t *testing.T) {
	m := NewSessionManager(time.Hour)

	current := time.Now()
	m.now = func() time.Time { return current }

	old, err := m.Create(testUser())
	assert.NoError(t, err)

	current = current.Add(30 * time.Minute)
	fresh, err := m.Create(testUser())
	assert.NoError(t, err)

	current = current.Add(45 * time.Minute)
	removed := m.PurgeExpired()
	assert.Equal(t, 1, removed)

	_, ok := m.Get(old.Token)
	assert.False(t, ok)
	_, ok = m.Get(fresh.Token)
	assert.True(t, ok)
}
