package service

import (
	"fmt"

	"emotion-classifier/internal/domain"
)

// EmotionScorer aplica las reglas aditivas de puntuación sobre los atributos de uso.
// No tiene estado: es seguro usarlo desde varias goroutines.
type EmotionScorer struct{}

// DefaultEmotionScorer permite uso directo sin instanciar.
var DefaultEmotionScorer = EmotionScorer{}

// Classify acumula puntos con las doce reglas y resuelve la emoción dominante.
// El input debe venir validado (ver InputCollector); un bucket de likes fuera del
// enum es una violación de precondición y provoca panic.
func (EmotionScorer) Classify(in domain.ClassificationInput) domain.ClassificationResult {
	likesIndex, err := in.LikesCategory.Index()
	if err != nil {
		panic(fmt.Sprintf("emotion scorer: %v", err))
	}

	var scores domain.EmotionScoreSet
	usage := in.DailyUsageMinutes

	if usage > 150 {
		scores.Add(domain.EmotionAnxiety, 35)
	}
	if usage < 60 {
		scores.Add(domain.EmotionBoredom, 30)
	}
	// Buckets cuya etiqueta contiene "70" o "90": 50-70, 70-90 y 90-110.
	if in.LikesCategory >= domain.Likes50To70 {
		scores.Add(domain.EmotionHappiness, 40)
	}
	if in.LikesCategory == domain.Likes0To10 && in.CommentsCategory == domain.Comments0To5 {
		scores.Add(domain.EmotionSadness, 35)
	}
	if usage >= 60 && usage <= 150 {
		scores.Add(domain.EmotionNeutral, 25)
	}
	if usage > 120 && usage < 160 {
		scores.Add(domain.EmotionAnxiety, 15)
	}
	if usage > 160 {
		scores.Add(domain.EmotionAnger, 20)
	}
	if likesIndex > 3 {
		scores.Add(domain.EmotionHappiness, 20)
	}
	if likesIndex < 2 {
		scores.Add(domain.EmotionSadness, 15)
	}
	if in.Platform == domain.PlatformLinkedIn {
		scores.Add(domain.EmotionNeutral, 20)
	}
	if in.Platform == domain.PlatformSnapchat || in.Platform == domain.PlatformInstagram {
		scores.Add(domain.EmotionHappiness, 10)
	}
	// Prior base.
	scores.Add(domain.EmotionNeutral, 15)

	predicted, confidence := ResolvePrediction(scores)
	return domain.ClassificationResult{
		PredictedEmotion:  predicted,
		ConfidencePercent: confidence,
		Scores:            scores,
	}
}

// ResolvePrediction devuelve la emoción con mayor puntaje y su porcentaje sobre el total.
// Los empates se resuelven a favor de la primera emoción en domain.ScoringOrder.
func ResolvePrediction(scores domain.EmotionScoreSet) (domain.Emotion, float64) {
	order := domain.ScoringOrder()
	best := order[0]
	for _, e := range order[1:] {
		if scores.Get(e) > scores.Get(best) {
			best = e
		}
	}
	total := scores.Total()
	if total == 0 {
		return best, 0
	}
	return best, float64(scores.Get(best)) / float64(total) * 100
}
