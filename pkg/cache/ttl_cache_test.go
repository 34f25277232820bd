package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTTLCache_SetGet(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	_, ok := c.Get("missing")
	require.False(t, ok)

	c.Set("answer", 42)
	val, ok := c.Get("answer")
	require.True(t, ok)
	require.Equal(t, 42, val)

	// Üzerine yazma
	c.Set("answer", 43)
	val, _ = c.Get("answer")
	require.Equal(t, 43, val)
}

func TestTTLCache_Expiry(t *testing.T) {
	c := New[string, string](20*time.Millisecond, time.Minute)
	defer c.Close()

	c.Set("key", "value")
	_, ok := c.Get("key")
	require.True(t, ok)

	// Süresi dolan kayıt cleanup beklemeden Get'te düşer
	time.Sleep(30 * time.Millisecond)
	_, ok = c.Get("key")
	require.False(t, ok)
}

func TestTTLCache_Delete(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	c.Set("key", 1)
	c.Delete("key")

	_, ok := c.Get("key")
	require.False(t, ok)
}

func TestTTLCache_EvictExpired(t *testing.T) {
	c := New[string, int](10*time.Millisecond, time.Minute)
	defer c.Close()

	c.Set("old", 1)
	time.Sleep(20 * time.Millisecond)
	c.evictExpired()

	c.mu.RLock()
	defer c.mu.RUnlock()
	require.Empty(t, c.entries)
}
