package service

import (
	"errors"

	"emotion-classifier/internal/domain"
)

// RawClassificationInput es el formulario tal como llega del cliente: etiquetas sin parsear.
type RawClassificationInput struct {
	Age               int     `json:"age"`
	Gender            string  `json:"gender"`
	Platform          string  `json:"platform"`
	DailyUsageMinutes int     `json:"daily_usage_minutes"`
	PostsPerDay       float64 `json:"posts_per_day"`
	LikesCategory     string  `json:"likes_category"`
	CommentsCategory  string  `json:"comments_category"`
	MessagesCategory  string  `json:"messages_category"`
}

// InputCollector convierte el formulario crudo en un ClassificationInput válido.
// Es el único punto donde se rechazan valores fuera de dominio.
type InputCollector struct{}

func (InputCollector) Collect(raw RawClassificationInput) (domain.ClassificationInput, error) {
	gender, errGender := domain.ParseGender(raw.Gender)
	platform, errPlatform := domain.ParsePlatform(raw.Platform)
	likes, errLikes := domain.ParseLikesCategory(raw.LikesCategory)
	comments, errComments := domain.ParseCommentsCategory(raw.CommentsCategory)
	messages, errMessages := domain.ParseMessagesCategory(raw.MessagesCategory)
	if err := errors.Join(errGender, errPlatform, errLikes, errComments, errMessages); err != nil {
		return domain.ClassificationInput{}, err
	}

	in := domain.ClassificationInput{
		Age:               raw.Age,
		Gender:            gender,
		Platform:          platform,
		DailyUsageMinutes: raw.DailyUsageMinutes,
		PostsPerDay:       raw.PostsPerDay,
		LikesCategory:     likes,
		CommentsCategory:  comments,
		MessagesCategory:  messages,
	}
	if err := in.Validate(); err != nil {
		return domain.ClassificationInput{}, err
	}
	return in, nil
}
