package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"emotion-classifier/internal/domain"
	"emotion-classifier/internal/metrics"
)

// PgSessionResultRepository retiene la última predicción por sesión en Postgres.
// Implementa service.ResultStore.
type PgSessionResultRepository struct {
	pool pgQuerier
	ttl  time.Duration
	now  func() time.Time
}

// pgQuerier es el subconjunto de *pgxpool.Pool que usa el repositorio.
type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func NewPgSessionResultRepository(pool *pgxpool.Pool, ttl time.Duration) *PgSessionResultRepository {
	return newPgSessionResultRepository(pool, ttl, func() time.Time { return time.Now().UTC() })
}

func newPgSessionResultRepository(pool pgQuerier, ttl time.Duration, now func() time.Time) *PgSessionResultRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &PgSessionResultRepository{pool: pool, ttl: ttl, now: now}
}

// EnsureSchema crea la tabla si no existe.
func (r *PgSessionResultRepository) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS session_results (
			session_id TEXT PRIMARY KEY,
			prediction JSONB NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`
	_, err := r.pool.Exec(ctx, ddl)
	return err
}

func (r *PgSessionResultRepository) Save(ctx context.Context, sessionID string, prediction domain.Prediction) error {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil
	}
	payload, err := json.Marshal(prediction)
	if err != nil {
		return fmt.Errorf("marshal prediction: %w", err)
	}
	const query = `
		INSERT INTO session_results (session_id, prediction, expires_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id) DO UPDATE
		SET prediction = EXCLUDED.prediction,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at
	`
	now := r.now()
	_, err = r.pool.Exec(ctx, query, sid, payload, now.Add(r.ttl), now)
	metrics.ObserveStoreOp("postgres", "save", err)
	return err
}

func (r *PgSessionResultRepository) Last(ctx context.Context, sessionID string) (domain.Prediction, bool, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return domain.Prediction{}, false, nil
	}
	const query = `
		SELECT prediction
		FROM session_results
		WHERE session_id = $1 AND expires_at > $2
	`
	var payload []byte
	err := r.pool.QueryRow(ctx, query, sid, r.now()).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.ObserveStoreOp("postgres", "last", nil)
		return domain.Prediction{}, false, nil
	}
	metrics.ObserveStoreOp("postgres", "last", err)
	if err != nil {
		return domain.Prediction{}, false, err
	}
	var prediction domain.Prediction
	if err := json.Unmarshal(payload, &prediction); err != nil {
		return domain.Prediction{}, false, fmt.Errorf("unmarshal prediction: %w", err)
	}
	return prediction, true, nil
}

// DeleteExpired elimina las filas vencidas y devuelve cuántas borró.
func (r *PgSessionResultRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM session_results WHERE expires_at <= $1`, r.now())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
