package domain

import (
	"fmt"
	"math"
	"time"
)

// Rangos aceptados por el formulario.
const (
	MinAge = 18
	MaxAge = 40

	MinDailyUsageMinutes  = 40
	MaxDailyUsageMinutes  = 200
	DailyUsageMinutesStep = 5

	MinPostsPerDay  = 0.0
	MaxPostsPerDay  = 10.0
	PostsPerDayStep = 0.5
)

// ClassificationInput son los atributos de uso auto-reportados por el usuario.
// Age y Gender se aceptan pero no participan en la puntuación.
type ClassificationInput struct {
	Age               int              `json:"age"`
	Gender            Gender           `json:"gender"`
	Platform          Platform         `json:"platform"`
	DailyUsageMinutes int              `json:"daily_usage_minutes"`
	PostsPerDay       float64          `json:"posts_per_day"`
	LikesCategory     LikesCategory    `json:"likes_category"`
	CommentsCategory  CommentsCategory `json:"comments_category"`
	MessagesCategory  MessagesCategory `json:"messages_category"`
}

// Validate verifica enums y rangos. Devuelve ErrInvalidInput envuelto con el campo.
func (in ClassificationInput) Validate() error {
	if in.Age < MinAge || in.Age > MaxAge {
		return fmt.Errorf("%w: age %d outside [%d, %d]", ErrInvalidInput, in.Age, MinAge, MaxAge)
	}
	if !in.Gender.Valid() {
		return fmt.Errorf("%w: gender %d", ErrInvalidInput, int(in.Gender))
	}
	if !in.Platform.Valid() {
		return fmt.Errorf("%w: platform %d", ErrInvalidInput, int(in.Platform))
	}
	if in.DailyUsageMinutes < MinDailyUsageMinutes || in.DailyUsageMinutes > MaxDailyUsageMinutes {
		return fmt.Errorf("%w: daily_usage_minutes %d outside [%d, %d]",
			ErrInvalidInput, in.DailyUsageMinutes, MinDailyUsageMinutes, MaxDailyUsageMinutes)
	}
	if math.IsNaN(in.PostsPerDay) || in.PostsPerDay < MinPostsPerDay || in.PostsPerDay > MaxPostsPerDay {
		return fmt.Errorf("%w: posts_per_day %v outside [%v, %v]", ErrInvalidInput, in.PostsPerDay, MinPostsPerDay, MaxPostsPerDay)
	}
	if steps := in.PostsPerDay / PostsPerDayStep; steps != math.Trunc(steps) {
		return fmt.Errorf("%w: posts_per_day %v is not a multiple of %v", ErrInvalidInput, in.PostsPerDay, PostsPerDayStep)
	}
	if !in.LikesCategory.Valid() {
		return fmt.Errorf("%w: likes_category %d", ErrInvalidInput, int(in.LikesCategory))
	}
	if !in.CommentsCategory.Valid() {
		return fmt.Errorf("%w: comments_category %d", ErrInvalidInput, int(in.CommentsCategory))
	}
	if !in.MessagesCategory.Valid() {
		return fmt.Errorf("%w: messages_category %d", ErrInvalidInput, int(in.MessagesCategory))
	}
	return nil
}

// ClassificationResult es derivado: se recalcula en cada invocación.
type ClassificationResult struct {
	PredictedEmotion  Emotion         `json:"predicted_emotion"`
	ConfidencePercent float64         `json:"confidence_percent"`
	Scores            EmotionScoreSet `json:"scores"`
}

// Prediction es lo que la capa de presentación muestra y retiene por sesión.
type Prediction struct {
	SessionID      string               `json:"session_id,omitempty"`
	Input          ClassificationInput  `json:"input"`
	Result         ClassificationResult `json:"result"`
	Interpretation string               `json:"interpretation"`
	Color          string               `json:"color"`
	CreatedAt      time.Time            `json:"created_at"`
}

// NewPrediction arma la vista de presentación para un resultado.
func NewPrediction(sessionID string, input ClassificationInput, result ClassificationResult, at time.Time) Prediction {
	return Prediction{
		SessionID:      sessionID,
		Input:          input,
		Result:         result,
		Interpretation: result.PredictedEmotion.Interpretation(),
		Color:          result.PredictedEmotion.Color(),
		CreatedAt:      at,
	}
}

// FormDefaults son los valores iniciales del formulario.
func FormDefaults() ClassificationInput {
	return ClassificationInput{
		Age:               25,
		Gender:            GenderFemale,
		Platform:          PlatformSnapchat,
		DailyUsageMinutes: 90,
		PostsPerDay:       3.0,
		LikesCategory:     Likes20To30,
		CommentsCategory:  Comments10To15,
		MessagesCategory:  Messages10To15,
	}
}
