package service

import (
	"testing"

	"emotion-classifier/internal/domain"
)

func TestAnalyticsServiceDataset(t *testing.T) {
	ds := AnalyticsService{}.Dataset()

	if len(ds.EmotionDistribution) != 6 {
		t.Fatalf("expected 6 emotions, got %d", len(ds.EmotionDistribution))
	}
	if ds.EmotionDistribution[0].Label != "Neutral" || ds.EmotionDistribution[0].Value != 45 {
		t.Fatalf("unexpected first emotion point: %+v", ds.EmotionDistribution[0])
	}
	total := 0.0
	for _, p := range ds.EmotionDistribution {
		if p.Color == "" {
			t.Fatalf("expected color for %s", p.Label)
		}
		total += p.Value
	}
	if total != 208 {
		t.Fatalf("expected emotion counts to add up to 208, got %v", total)
	}
	if len(ds.PlatformUsage) != 7 || ds.PlatformUsage[0].Label != "Instagram" {
		t.Fatalf("unexpected platform usage: %+v", ds.PlatformUsage)
	}
	if len(ds.LikesDistribution) != 7 {
		t.Fatalf("expected 7 likes buckets, got %d", len(ds.LikesDistribution))
	}
	if len(ds.Summary) != 4 {
		t.Fatalf("expected 4 summary metrics, got %d", len(ds.Summary))
	}
}

func TestAnalyticsServiceInsights(t *testing.T) {
	in := AnalyticsService{}.Insights()
	if len(in.Performance) != 4 || in.Performance[0].Value != "87.5%" {
		t.Fatalf("unexpected performance metrics: %+v", in.Performance)
	}
	if len(in.FeatureImportance) != 8 || in.FeatureImportance[0].Label != "Daily Usage Time" {
		t.Fatalf("unexpected feature importance: %+v", in.FeatureImportance)
	}
	if len(in.KeyFindings) != 5 {
		t.Fatalf("expected 5 key findings, got %d", len(in.KeyFindings))
	}
	if len(in.ModelFeatures) == 0 || len(in.DataProcessing) == 0 || len(in.ClassificationLogic) == 0 {
		t.Fatalf("expected methodology sections")
	}
}

func TestAnalyticsServiceFormOptions(t *testing.T) {
	opts := AnalyticsService{}.FormOptions()
	if len(opts.Genders) != 3 || len(opts.Platforms) != 7 {
		t.Fatalf("unexpected enum sizes: %d genders, %d platforms", len(opts.Genders), len(opts.Platforms))
	}
	if len(opts.LikesCategories) != 7 || len(opts.CommentsCategories) != 8 || len(opts.MessagesCategories) != 8 {
		t.Fatalf("unexpected bucket sizes")
	}
	if opts.LikesCategories[0] != "0-10" || opts.LikesCategories[6] != "90-110" {
		t.Fatalf("likes buckets out of order: %v", opts.LikesCategories)
	}
	if opts.PostsPerDay.Step != 0.5 || opts.DailyUsageMinutes.Min != 40 || opts.Age.Max != 40 {
		t.Fatalf("unexpected ranges: %+v", opts)
	}
	if err := opts.Defaults.Validate(); err != nil {
		t.Fatalf("expected defaults to be valid, got %v", err)
	}
	if opts.Defaults.LikesCategory != domain.Likes20To30 {
		t.Fatalf("expected default likes bucket index 2, got %s", opts.Defaults.LikesCategory)
	}
}

func TestScoreBreakdown(t *testing.T) {
	var s domain.EmotionScoreSet
	s.Add(domain.EmotionSadness, 50)
	s.Add(domain.EmotionNeutral, 15)

	bars := ScoreBreakdown(s)
	if len(bars) != 6 {
		t.Fatalf("expected 6 bars, got %d", len(bars))
	}
	if bars[0].Label != "Anxiety" || bars[0].Value != 0 {
		t.Fatalf("expected Anxiety first with 0, got %+v", bars[0])
	}
	if bars[3].Label != "Sadness" || bars[3].Value != 50 {
		t.Fatalf("expected Sadness 50 at index 3, got %+v", bars[3])
	}
}
