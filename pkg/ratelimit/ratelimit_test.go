package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoginRateLimiter_AllowAndBlock(t *testing.T) {
	rl := NewLoginRateLimiter(3, time.Minute)
	defer rl.Close()

	require.True(t, rl.Allow("1.2.3.4"))
	require.True(t, rl.Allow("1.2.3.4"))
	require.True(t, rl.Allow("1.2.3.4"))
	require.False(t, rl.Allow("1.2.3.4"))

	// Başka IP etkilenmez
	require.True(t, rl.Allow("5.6.7.8"))
}

func TestLoginRateLimiter_Reset(t *testing.T) {
	rl := NewLoginRateLimiter(2, time.Minute)
	defer rl.Close()

	require.True(t, rl.Allow("1.2.3.4"))
	require.True(t, rl.Allow("1.2.3.4"))
	require.False(t, rl.Allow("1.2.3.4"))

	// Başarılı login sayacı temizler
	rl.Reset("1.2.3.4")
	require.True(t, rl.Allow("1.2.3.4"))
}

func TestLoginRateLimiter_WindowExpiry(t *testing.T) {
	rl := NewLoginRateLimiter(1, 20*time.Millisecond)
	defer rl.Close()

	require.True(t, rl.Allow("1.2.3.4"))
	require.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(30 * time.Millisecond)
	require.True(t, rl.Allow("1.2.3.4"))
}

func TestLoginRateLimiter_RetryAfterSeconds(t *testing.T) {
	rl := NewLoginRateLimiter(1, time.Minute)
	defer rl.Close()

	// Bucket yoksa bekleme yok
	require.Zero(t, rl.RetryAfterSeconds("1.2.3.4"))

	rl.Allow("1.2.3.4")
	retry := rl.RetryAfterSeconds("1.2.3.4")
	require.Greater(t, retry, 0)
	require.LessOrEqual(t, retry, 61)
}

func TestFormatRetryMessage(t *testing.T) {
	require.Equal(t, "30 seconds", FormatRetryMessage(30))
	require.Equal(t, "1 minute", FormatRetryMessage(60))
	require.Equal(t, "2 minutes", FormatRetryMessage(61))
	require.Equal(t, "2 minutes", FormatRetryMessage(120))
}

func TestExtractIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/login", nil)
	r.RemoteAddr = "10.0.0.1:52000"
	require.Equal(t, "10.0.0.1", ExtractIP(r))

	// X-Real-IP, RemoteAddr'ı ezer
	r.Header.Set("X-Real-IP", "20.0.0.2")
	require.Equal(t, "20.0.0.2", ExtractIP(r))

	// X-Forwarded-For en yüksek öncelikli — ilk değer client IP'sidir
	r.Header.Set("X-Forwarded-For", "30.0.0.3, 40.0.0.4")
	require.Equal(t, "30.0.0.3", ExtractIP(r))
}
