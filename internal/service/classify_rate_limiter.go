package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateDecision es la respuesta del limitador para una clasificación concreta.
type RateDecision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// ClassifyRateLimiter limita cuántas clasificaciones puede pedir una sesión por ventana.
// Las dos implementaciones usan ventana fija: el primer intento de la sesión la abre.
type ClassifyRateLimiter interface {
	Allow(ctx context.Context, sessionID string) RateDecision
}

func decide(count, max int, retryAfter time.Duration) RateDecision {
	if count > max {
		return RateDecision{Allowed: false, RetryAfter: retryAfter}
	}
	return RateDecision{Allowed: true, Remaining: max - count}
}

type sessionWindow struct {
	opened time.Time
	count  int
}

type memoryRateLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	max       int
	sessions  map[string]*sessionWindow
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryRateLimiter crea el limitador en proceso. Las ventanas vencidas se
// barren como mucho una vez por ventana, así las sesiones abandonadas no se acumulan.
func NewMemoryRateLimiter(window time.Duration, max int) ClassifyRateLimiter {
	return newMemoryRateLimiter(window, max, time.Now)
}

func newMemoryRateLimiter(window time.Duration, max int, now func() time.Time) *memoryRateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryRateLimiter{
		window:    window,
		max:       max,
		sessions:  make(map[string]*sessionWindow),
		lastSweep: now(),
		now:       now,
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, sessionID string) RateDecision {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return RateDecision{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.window {
		l.sweepLocked(now)
	}

	w, ok := l.sessions[sid]
	if !ok || now.Sub(w.opened) >= l.window {
		w = &sessionWindow{opened: now}
		l.sessions[sid] = w
	}
	w.count++
	return decide(w.count, l.max, w.opened.Add(l.window).Sub(now))
}

func (l *memoryRateLimiter) sweepLocked(now time.Time) {
	for sid, w := range l.sessions {
		if now.Sub(w.opened) >= l.window {
			delete(l.sessions, sid)
		}
	}
	l.lastSweep = now
}

// Devuelve {contador, ms hasta que cierre la ventana}.
const redisRateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

// NewRedisRateLimiter comparte el conteo entre instancias. Si Redis falla, deja pasar.
func NewRedisRateLimiter(client *redis.Client, window time.Duration, max int) ClassifyRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "classifier:rl:",
	}
}

func (l *redisRateLimiter) Allow(ctx context.Context, sessionID string) RateDecision {
	if l == nil || l.client == nil {
		return RateDecision{Allowed: true}
	}
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return RateDecision{}
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	reply, err := l.client.Eval(ctx, redisRateLimitScript, []string{l.prefix + sid}, l.window.Milliseconds()).Int64Slice()
	if err != nil || len(reply) != 2 {
		return RateDecision{Allowed: true}
	}
	retryAfter := time.Duration(reply[1]) * time.Millisecond
	if retryAfter < 0 {
		retryAfter = l.window
	}
	return decide(int(reply[0]), l.max, retryAfter)
}
