package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"emotion-classifier/internal/domain"
	"emotion-classifier/internal/metrics"
)

// ClassificationService conecta el formulario, el scorer y la retención por sesión.
type ClassificationService struct {
	logger    *zap.Logger
	collector InputCollector
	scorer    EmotionScorer
	store     ResultStore
	now       func() time.Time
}

func NewClassificationService(logger *zap.Logger, store ResultStore) *ClassificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = NewMemoryResultStore(0)
	}
	return &ClassificationService{
		logger: logger,
		store:  store,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Classify valida el formulario, puntúa y guarda la predicción como última de la sesión.
// Un error de validación envuelve domain.ErrInvalidInput.
func (s *ClassificationService) Classify(ctx context.Context, sessionID string, raw RawClassificationInput) (domain.Prediction, error) {
	in, err := s.collector.Collect(raw)
	if err != nil {
		metrics.InvalidInputsTotal.Inc()
		return domain.Prediction{}, err
	}

	result := s.scorer.Classify(in)
	prediction := domain.NewPrediction(sessionID, in, result, s.now())

	metrics.ClassificationsTotal.WithLabelValues(result.PredictedEmotion.String()).Inc()
	metrics.ClassificationConfidence.Observe(result.ConfidencePercent)

	if err := s.store.Save(ctx, sessionID, prediction); err != nil {
		// La predicción sigue siendo válida aunque no se pueda retener.
		s.logger.Warn("save last prediction failed", zap.Error(err), zap.String("session_id", sessionID))
	}

	s.logger.Debug("classified",
		zap.String("session_id", sessionID),
		zap.Stringer("emotion", result.PredictedEmotion),
		zap.Float64("confidence", result.ConfidencePercent),
	)
	return prediction, nil
}

// Last devuelve la última predicción retenida para la sesión.
func (s *ClassificationService) Last(ctx context.Context, sessionID string) (domain.Prediction, bool, error) {
	prediction, ok, err := s.store.Last(ctx, sessionID)
	if err != nil {
		return domain.Prediction{}, false, fmt.Errorf("load last prediction: %w", err)
	}
	return prediction, ok, nil
}
