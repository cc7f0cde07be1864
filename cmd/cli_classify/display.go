package main

import (
	"fmt"
	"strings"

	"emotion-classifier/internal/domain"
	"emotion-classifier/internal/service"
)

const barWidth = 40

func printPrediction(p domain.Prediction) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Predicted emotion: %s\n", p.Result.PredictedEmotion)
	fmt.Printf("Confidence: %.1f%%\n", p.Result.ConfidencePercent)
	fmt.Println()
	fmt.Println("Emotion score breakdown:")
	printBars(service.ScoreBreakdown(p.Result.Scores))
	fmt.Println()
	fmt.Println("Input summary:")
	fmt.Printf("  Age: %-6d Gender: %s\n", p.Input.Age, p.Input.Gender)
	fmt.Printf("  Platform: %-10s Likes: %s\n", p.Input.Platform, p.Input.LikesCategory)
	fmt.Printf("  Daily usage: %d min   Posts/day: %.1f\n", p.Input.DailyUsageMinutes, p.Input.PostsPerDay)
	fmt.Println()
	fmt.Printf("Interpretation: %s\n", p.Interpretation)
	fmt.Println(strings.Repeat("=", 60))
}

// printBars dibuja un gráfico de barras horizontal escalado al valor máximo.
func printBars(points []domain.ChartPoint) {
	maxValue := 0.0
	labelWidth := 0
	for _, p := range points {
		if p.Value > maxValue {
			maxValue = p.Value
		}
		if len(p.Label) > labelWidth {
			labelWidth = len(p.Label)
		}
	}
	for _, p := range points {
		n := 0
		if maxValue > 0 {
			n = int(p.Value / maxValue * barWidth)
		}
		fmt.Printf("  %-*s %4.0f %s\n", labelWidth, p.Label, p.Value, strings.Repeat("#", n))
	}
}

func printMetrics(metrics []domain.SummaryMetric) {
	for _, m := range metrics {
		fmt.Printf("  %-14s %-8s (%s)\n", m.Name, m.Value, m.Delta)
	}
}

func printDataset(ds domain.DatasetAnalytics) {
	fmt.Println("\nDATASET ANALYTICS")
	fmt.Println(strings.Repeat("-", 60))
	printMetrics(ds.Summary)
	fmt.Println("\nEmotion distribution:")
	printBars(ds.EmotionDistribution)
	fmt.Println("\nPlatform usage:")
	printBars(ds.PlatformUsage)
	fmt.Println("\nLikes category distribution:")
	printBars(ds.LikesDistribution)
}

func printInsights(in domain.ModelInsights) {
	fmt.Println("\nMODEL PERFORMANCE & INSIGHTS")
	fmt.Println(strings.Repeat("-", 60))
	printMetrics(in.Performance)
	fmt.Println("\nFeature importance:")
	printBars(in.FeatureImportance)
	fmt.Println("\nKey findings:")
	for _, f := range in.KeyFindings {
		fmt.Printf("  [%s] %s: %s\n", strings.ToUpper(f.Level), f.Title, f.Detail)
	}
	printList("Model features", in.ModelFeatures)
	printList("Data processing", in.DataProcessing)
	printList("Classification logic", in.ClassificationLogic)
}

func printList(title string, items []string) {
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
