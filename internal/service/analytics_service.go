package service

import "emotion-classifier/internal/domain"

// AnalyticsService expone las tablas decorativas y las opciones del formulario.
type AnalyticsService struct{}

type NumericRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// FormOptions describe lo que el formulario debe ofrecer para producir un input válido.
type FormOptions struct {
	Genders            []string                   `json:"genders"`
	Platforms          []string                   `json:"platforms"`
	LikesCategories    []string                   `json:"likes_categories"`
	CommentsCategories []string                   `json:"comments_categories"`
	MessagesCategories []string                   `json:"messages_categories"`
	Emotions           []domain.ChartPoint        `json:"emotions"`
	Age                NumericRange               `json:"age"`
	DailyUsageMinutes  NumericRange               `json:"daily_usage_minutes"`
	PostsPerDay        NumericRange               `json:"posts_per_day"`
	Defaults           domain.ClassificationInput `json:"defaults"`
}

func (AnalyticsService) Dataset() domain.DatasetAnalytics {
	return domain.DatasetAnalytics{
		Summary:             domain.DatasetSummary(),
		EmotionDistribution: domain.EmotionDistribution(),
		PlatformUsage:       domain.PlatformUsage(),
		LikesDistribution:   domain.LikesDistribution(),
	}
}

func (AnalyticsService) Insights() domain.ModelInsights {
	features, processing, logic := domain.Methodology()
	return domain.ModelInsights{
		Performance:         domain.PerformanceMetrics(),
		FeatureImportance:   domain.FeatureImportance(),
		KeyFindings:         domain.KeyFindings(),
		ModelFeatures:       features,
		DataProcessing:      processing,
		ClassificationLogic: logic,
	}
}

func (AnalyticsService) FormOptions() FormOptions {
	opts := FormOptions{
		Age:               NumericRange{Min: domain.MinAge, Max: domain.MaxAge, Step: 1},
		DailyUsageMinutes: NumericRange{Min: domain.MinDailyUsageMinutes, Max: domain.MaxDailyUsageMinutes, Step: domain.DailyUsageMinutesStep},
		PostsPerDay:       NumericRange{Min: domain.MinPostsPerDay, Max: domain.MaxPostsPerDay, Step: domain.PostsPerDayStep},
		Defaults:          domain.FormDefaults(),
	}
	for _, g := range domain.AllGenders() {
		opts.Genders = append(opts.Genders, g.String())
	}
	for _, p := range domain.AllPlatforms() {
		opts.Platforms = append(opts.Platforms, p.String())
	}
	for _, c := range domain.AllLikesCategories() {
		opts.LikesCategories = append(opts.LikesCategories, c.String())
	}
	for _, c := range domain.AllCommentsCategories() {
		opts.CommentsCategories = append(opts.CommentsCategories, c.String())
	}
	for _, c := range domain.AllMessagesCategories() {
		opts.MessagesCategories = append(opts.MessagesCategories, c.String())
	}
	for _, e := range domain.AllEmotions() {
		opts.Emotions = append(opts.Emotions, domain.ChartPoint{Label: e.String(), Color: e.Color()})
	}
	return opts
}

// ScoreBreakdown convierte el set de puntajes en barras en orden de puntuación.
func ScoreBreakdown(scores domain.EmotionScoreSet) []domain.ChartPoint {
	out := make([]domain.ChartPoint, 0, len(domain.ScoringOrder()))
	for _, e := range domain.ScoringOrder() {
		out = append(out, domain.ChartPoint{Label: e.String(), Value: float64(scores.Get(e)), Color: e.Color()})
	}
	return out
}
