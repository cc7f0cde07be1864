package service

import (
	"errors"
	"testing"

	"emotion-classifier/internal/domain"
)

func validRaw() RawClassificationInput {
	return RawClassificationInput{
		Age:               25,
		Gender:            "Non-binary",
		Platform:          "Instagram",
		DailyUsageMinutes: 90,
		PostsPerDay:       2.5,
		LikesCategory:     "70-90",
		CommentsCategory:  "20-25",
		MessagesCategory:  "30-40",
	}
}

func TestInputCollectorCollect_ParsesLabels(t *testing.T) {
	raw := validRaw()
	raw.Platform = "  linkedin "

	in, err := InputCollector{}.Collect(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Gender != domain.GenderNonBinary {
		t.Fatalf("expected Non-binary, got %s", in.Gender)
	}
	if in.Platform != domain.PlatformLinkedIn {
		t.Fatalf("expected LinkedIn, got %s", in.Platform)
	}
	if in.LikesCategory != domain.Likes70To90 {
		t.Fatalf("expected 70-90, got %s", in.LikesCategory)
	}
	if in.CommentsCategory != domain.Comments20To25 || in.MessagesCategory != domain.Messages30To40 {
		t.Fatalf("unexpected buckets: %s %s", in.CommentsCategory, in.MessagesCategory)
	}
	if in.PostsPerDay != 2.5 || in.DailyUsageMinutes != 90 || in.Age != 25 {
		t.Fatalf("unexpected scalar fields: %+v", in)
	}
}

func TestInputCollectorCollect_RejectsOutOfDomain(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *RawClassificationInput)
	}{
		{"unknown gender", func(r *RawClassificationInput) { r.Gender = "Robot" }},
		{"unknown platform", func(r *RawClassificationInput) { r.Platform = "Myspace" }},
		{"unknown likes bucket", func(r *RawClassificationInput) { r.LikesCategory = "110-130" }},
		{"likes label from comments list", func(r *RawClassificationInput) { r.LikesCategory = "0-5" }},
		{"unknown comments bucket", func(r *RawClassificationInput) { r.CommentsCategory = "40-45" }},
		{"unknown messages bucket", func(r *RawClassificationInput) { r.MessagesCategory = "30-35" }},
		{"age too low", func(r *RawClassificationInput) { r.Age = 17 }},
		{"age too high", func(r *RawClassificationInput) { r.Age = 41 }},
		{"usage too low", func(r *RawClassificationInput) { r.DailyUsageMinutes = 39 }},
		{"usage too high", func(r *RawClassificationInput) { r.DailyUsageMinutes = 201 }},
		{"negative posts", func(r *RawClassificationInput) { r.PostsPerDay = -0.5 }},
		{"too many posts", func(r *RawClassificationInput) { r.PostsPerDay = 10.5 }},
		{"posts off step", func(r *RawClassificationInput) { r.PostsPerDay = 1.3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)
			if _, err := (InputCollector{}).Collect(raw); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestInputCollectorCollect_AcceptsBoundaries(t *testing.T) {
	raw := validRaw()
	raw.Age = domain.MinAge
	raw.DailyUsageMinutes = domain.MaxDailyUsageMinutes
	raw.PostsPerDay = domain.MaxPostsPerDay
	if _, err := (InputCollector{}).Collect(raw); err != nil {
		t.Fatalf("expected upper boundaries to be valid, got %v", err)
	}

	raw.Age = domain.MaxAge
	raw.DailyUsageMinutes = domain.MinDailyUsageMinutes
	raw.PostsPerDay = domain.MinPostsPerDay
	if _, err := (InputCollector{}).Collect(raw); err != nil {
		t.Fatalf("expected lower boundaries to be valid, got %v", err)
	}
}
