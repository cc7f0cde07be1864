package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"emotion-classifier/internal/config"
	"emotion-classifier/internal/domain"
	"emotion-classifier/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	// La sesión de la terminal vive lo que dure el proceso.
	sessionID := uuid.NewString()
	classificationSvc := service.NewClassificationService(logger, service.NewMemoryResultStore(cfg.ResultTTL()))
	analytics := service.AnalyticsService{}

	fmt.Println("Social Media Emotion Classifier")
	for {
		fmt.Println()
		fmt.Println("1) Clasificar emoción")
		fmt.Println("2) Ver última predicción")
		fmt.Println("3) Analítica del dataset")
		fmt.Println("4) Insights del modelo")
		fmt.Println("0) Salir")
		fmt.Print("> ")
		choice, err := reader.ReadString('\n')
		if err != nil {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			raw := collectForm(reader, analytics.FormOptions())
			prediction, err := classificationSvc.Classify(ctx, sessionID, raw)
			if errors.Is(err, domain.ErrInvalidInput) {
				fmt.Printf("Input inválido: %v\n", err)
				continue
			}
			if err != nil {
				logger.Error("classify", zap.Error(err))
				continue
			}
			printPrediction(prediction)
		case "2":
			prediction, ok, err := classificationSvc.Last(ctx, sessionID)
			if err != nil {
				logger.Warn("load last prediction", zap.Error(err))
				continue
			}
			if !ok {
				fmt.Println("Todavía no hay predicciones en esta sesión.")
				continue
			}
			printPrediction(prediction)
		case "3":
			printDataset(analytics.Dataset())
		case "4":
			printInsights(analytics.Insights())
		case "0", "q", "exit":
			return
		default:
			fmt.Println("Opción inválida.")
		}
	}
}

func collectForm(reader *bufio.Reader, opts service.FormOptions) service.RawClassificationInput {
	d := opts.Defaults
	return service.RawClassificationInput{
		Age:               readIntDefault(reader, fmt.Sprintf("Age (%v-%v, default %d): ", opts.Age.Min, opts.Age.Max, d.Age), d.Age),
		Gender:            readChoiceDefault(reader, "Gender", opts.Genders, d.Gender.String()),
		Platform:          readChoiceDefault(reader, "Platform", opts.Platforms, d.Platform.String()),
		DailyUsageMinutes: readIntDefault(reader, fmt.Sprintf("Daily usage minutes (%v-%v, default %d): ", opts.DailyUsageMinutes.Min, opts.DailyUsageMinutes.Max, d.DailyUsageMinutes), d.DailyUsageMinutes),
		PostsPerDay:       readFloatDefault(reader, fmt.Sprintf("Posts per day (%v-%v step %v, default %.1f): ", opts.PostsPerDay.Min, opts.PostsPerDay.Max, opts.PostsPerDay.Step, d.PostsPerDay), d.PostsPerDay),
		LikesCategory:     readChoiceDefault(reader, "Likes category", opts.LikesCategories, d.LikesCategory.String()),
		CommentsCategory:  readChoiceDefault(reader, "Comments category", opts.CommentsCategories, d.CommentsCategory.String()),
		MessagesCategory:  readChoiceDefault(reader, "Messages category", opts.MessagesCategories, d.MessagesCategory.String()),
	}
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// readIntDefault vuelve a preguntar mientras la entrada no sea un entero.
// Una línea vacía (o EOF) elige el valor por defecto.
func readIntDefault(reader *bufio.Reader, prompt string, def int) int {
	for {
		line := readLine(reader, prompt)
		if line == "" {
			return def
		}
		v, err := strconv.Atoi(line)
		if err == nil {
			return v
		}
		fmt.Printf("  %q no es un número entero.\n", line)
	}
}

func readFloatDefault(reader *bufio.Reader, prompt string, def float64) float64 {
	for {
		line := readLine(reader, prompt)
		if line == "" {
			return def
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v
		}
		fmt.Printf("  %q no es un número.\n", line)
	}
}

// readChoiceDefault acepta el número de la opción o la etiqueta literal.
func readChoiceDefault(reader *bufio.Reader, label string, options []string, def string) string {
	fmt.Printf("%s:\n", label)
	for i, opt := range options {
		marker := " "
		if opt == def {
			marker = "*"
		}
		fmt.Printf("  %s%d) %s\n", marker, i+1, opt)
	}
	line := readLine(reader, fmt.Sprintf("  choice (default %s): ", def))
	if line == "" {
		return def
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	return line
}
