// Package cache — generic in-memory TTL cache.
//
// TTLCache, süresi dolan kayıtları otomatik düşüren thread-safe bir
// cache'tir. Burada istatistik aggregate'lerini kısa süreliğine tutmak
// için kullanılır: dashboard her açılışta 3 COUNT + 1 aggregate sorgusu
// yerine cache'ten okur, TTL dolunca tazelenir.
//
// Her Get'te süre kontrolü yapılır (stale entry asla dönmez); map'ten
// fiziksel silme ise periyodik cleanup goroutine'indedir — böylece
// okunmayan eski key'ler belleği şişirmez.
package cache

import (
	"sync"
	"time"
)

// entry, cache'teki tek bir kayıt.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache, generic in-memory TTL cache.
//
//	c := cache.New[string, int](30*time.Second, 5*time.Minute)
//	c.Set("key", 42)
//	val, ok := c.Get("key")
type TTLCache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration

	stopCleanup chan struct{}
}

// New, yeni bir TTLCache oluşturur ve cleanup goroutine'ini başlatır.
// cleanupInterval, ttl'den küçük tutulmalıdır — aksi halde map gereksiz büyür.
func New[K comparable, V any](ttl, cleanupInterval time.Duration) *TTLCache[K, V] {
	c := &TTLCache[K, V]{
		entries:     make(map[K]entry[V]),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.evictExpired()
			case <-c.stopCleanup:
				return
			}
		}
	}()

	return c
}

// Get, key'in değerini döner. Kayıt yoksa veya süresi dolmuşsa ok=false.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set, key'e değer yazar; süre TTL kadar sonra dolar.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Delete, key'i cache'ten düşürür. Veri değiştiğinde stale okumayı
// önlemek için kullanılır (ör. yeni teklif yazıldığında istatistikler).
func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Close, cleanup goroutine'ini durdurur.
func (c *TTLCache[K, V]) Close() {
	close(c.stopCleanup)
}

func (c *TTLCache[K, V]) evictExpired() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
