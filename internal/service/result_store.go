package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"emotion-classifier/internal/domain"
	"emotion-classifier/internal/metrics"
)

// ResultStore retiene la última predicción de cada sesión del formulario.
type ResultStore interface {
	Save(ctx context.Context, sessionID string, prediction domain.Prediction) error
	Last(ctx context.Context, sessionID string) (domain.Prediction, bool, error)
}

type memoryEntry struct {
	prediction domain.Prediction
	expiresAt  time.Time
}

type memoryResultStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	items     map[string]memoryEntry
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryResultStore crea un store en proceso con expiración por TTL. Save barre
// las sesiones vencidas como mucho una vez por TTL.
func NewMemoryResultStore(ttl time.Duration) ResultStore {
	return newMemoryResultStore(ttl, func() time.Time { return time.Now().UTC() })
}

func newMemoryResultStore(ttl time.Duration, now func() time.Time) *memoryResultStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &memoryResultStore{
		ttl:       ttl,
		items:     make(map[string]memoryEntry),
		lastSweep: now(),
		now:       now,
	}
}

func (s *memoryResultStore) Save(_ context.Context, sessionID string, prediction domain.Prediction) error {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if now.Sub(s.lastSweep) >= s.ttl {
		s.purgeExpiredLocked(now)
	}
	s.items[sid] = memoryEntry{prediction: prediction, expiresAt: now.Add(s.ttl)}
	metrics.ObserveStoreOp("memory", "save", nil)
	return nil
}

func (s *memoryResultStore) purgeExpiredLocked(now time.Time) {
	for sid, entry := range s.items {
		if !now.Before(entry.expiresAt) {
			delete(s.items, sid)
		}
	}
	s.lastSweep = now
}

func (s *memoryResultStore) Last(_ context.Context, sessionID string) (domain.Prediction, bool, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return domain.Prediction{}, false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.ObserveStoreOp("memory", "last", nil)
	entry, ok := s.items[sid]
	if !ok {
		return domain.Prediction{}, false, nil
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.items, sid)
		return domain.Prediction{}, false, nil
	}
	return entry.prediction, true, nil
}

type redisKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

type redisResultStore struct {
	client redisKV
	ttl    time.Duration
	prefix string
}

// NewRedisResultStore guarda la predicción serializada en JSON con TTL.
func NewRedisResultStore(client *redis.Client, ttl time.Duration) ResultStore {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisResultStore{
		client: client,
		ttl:    ttl,
		prefix: "classifier:last:",
	}
}

func (s *redisResultStore) Save(ctx context.Context, sessionID string, prediction domain.Prediction) error {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil
	}
	payload, err := json.Marshal(prediction)
	if err != nil {
		return fmt.Errorf("marshal prediction: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	err = s.client.Set(ctx, s.prefix+sid, payload, s.ttl).Err()
	metrics.ObserveStoreOp("redis", "save", err)
	return err
}

func (s *redisResultStore) Last(ctx context.Context, sessionID string) (domain.Prediction, bool, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return domain.Prediction{}, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	raw, err := s.client.Get(ctx, s.prefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ObserveStoreOp("redis", "last", nil)
		return domain.Prediction{}, false, nil
	}
	metrics.ObserveStoreOp("redis", "last", err)
	if err != nil {
		return domain.Prediction{}, false, err
	}
	var prediction domain.Prediction
	if err := json.Unmarshal(raw, &prediction); err != nil {
		return domain.Prediction{}, false, fmt.Errorf("unmarshal prediction: %w", err)
	}
	return prediction, true, nil
}
