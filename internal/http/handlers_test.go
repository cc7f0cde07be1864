package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"emotion-classifier/internal/domain"
	"emotion-classifier/internal/service"
)

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(context.Context, string) service.RateDecision {
	return service.RateDecision{RetryAfter: 1500 * time.Millisecond}
}

type brokenResultStore struct{}

func (brokenResultStore) Save(context.Context, string, domain.Prediction) error { return nil }

func (brokenResultStore) Last(context.Context, string) (domain.Prediction, bool, error) {
	return domain.Prediction{}, false, errors.New("store down")
}

type testServer struct {
	router *gin.Engine
	tokens *service.SessionTokenService
}

func setupRouter(t *testing.T, store service.ResultStore, limiter service.ClassifyRateLimiter, checks map[string]HealthCheck) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	tokens := service.NewSessionTokenService("secret", time.Hour)
	classification := service.NewClassificationService(logger, store)
	r := NewRouter(
		logger,
		NewSessionHandler(logger, tokens),
		NewClassifyHandler(logger, classification, limiter),
		NewAnalyticsHandler(service.AnalyticsService{}),
		NewHealthHandler(logger, checks),
	)
	return testServer{router: r, tokens: tokens}
}

func performRequest(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func newSessionToken(t *testing.T, srv testServer) string {
	t.Helper()
	rec := performRequest(srv.router, http.MethodPost, "/session", "", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating session, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Session domain.Session `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if resp.Session.ID == "" || resp.Session.Token == "" {
		t.Fatalf("expected session id and token, got %+v", resp.Session)
	}
	return resp.Session.Token
}

func scenarioBody() map[string]any {
	return map[string]any{
		"age":                 25,
		"gender":              "Female",
		"platform":            "Instagram",
		"daily_usage_minutes": 90,
		"posts_per_day":       0,
		"likes_category":      "70-90",
		"comments_category":   "20-25",
		"messages_category":   "10-15",
	}
}

type predictionBody struct {
	Prediction domain.Prediction   `json:"prediction"`
	Breakdown  []domain.ChartPoint `json:"breakdown"`
}

func TestClassifyHandler_ClassifyAndLast(t *testing.T) {
	srv := setupRouter(t, service.NewMemoryResultStore(time.Hour), nil, nil)
	token := newSessionToken(t, srv)

	rec := performRequest(srv.router, http.MethodGet, "/classify/last", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before any prediction, got %d", rec.Code)
	}

	rec = performRequest(srv.router, http.MethodPost, "/classify", token, scenarioBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp predictionBody
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Prediction.Result.PredictedEmotion != domain.EmotionHappiness {
		t.Fatalf("expected Happiness, got %s", resp.Prediction.Result.PredictedEmotion)
	}
	if got := resp.Prediction.Result.Scores.Get(domain.EmotionHappiness); got != 70 {
		t.Fatalf("expected happiness 70, got %d", got)
	}
	if len(resp.Breakdown) != 6 {
		t.Fatalf("expected 6 breakdown bars, got %d", len(resp.Breakdown))
	}
	if resp.Prediction.Interpretation == "" {
		t.Fatalf("expected interpretation text")
	}

	rec = performRequest(srv.router, http.MethodGet, "/classify/last", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for last, got %d", rec.Code)
	}
	var last predictionBody
	if err := json.Unmarshal(rec.Body.Bytes(), &last); err != nil {
		t.Fatalf("decode last: %v", err)
	}
	if last.Prediction.Result != resp.Prediction.Result {
		t.Fatalf("expected last result %+v, got %+v", resp.Prediction.Result, last.Prediction.Result)
	}

	other := newSessionToken(t, srv)
	rec = performRequest(srv.router, http.MethodGet, "/classify/last", other, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected other session to have no prediction, got %d", rec.Code)
	}
}

func TestClassifyHandler_RejectsInvalidInput(t *testing.T) {
	srv := setupRouter(t, nil, nil, nil)
	token := newSessionToken(t, srv)

	body := scenarioBody()
	body["likes_category"] = "200-300"
	rec := performRequest(srv.router, http.MethodPost, "/classify", token, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown bucket, got %d", rec.Code)
	}

	body = scenarioBody()
	body["daily_usage_minutes"] = 500
	rec = performRequest(srv.router, http.MethodPost, "/classify", token, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for usage out of range, got %d", rec.Code)
	}

	body = scenarioBody()
	delete(body, "posts_per_day")
	rec = performRequest(srv.router, http.MethodPost, "/classify", token, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing field, got %d", rec.Code)
	}
}

func TestClassifyHandler_RequiresSession(t *testing.T) {
	srv := setupRouter(t, nil, nil, nil)

	rec := performRequest(srv.router, http.MethodPost, "/classify", "", scenarioBody())
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	rec = performRequest(srv.router, http.MethodPost, "/classify", "garbage", scenarioBody())
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", rec.Code)
	}
}

func TestClassifyHandler_RateLimited(t *testing.T) {
	srv := setupRouter(t, nil, denyAllLimiter{}, nil)
	token := newSessionToken(t, srv)

	rec := performRequest(srv.router, http.MethodPost, "/classify", token, scenarioBody())
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "2" {
		t.Fatalf("expected Retry-After 2, got %q", got)
	}
}

func TestClassifyHandler_LastStoreError(t *testing.T) {
	srv := setupRouter(t, brokenResultStore{}, nil, nil)
	token := newSessionToken(t, srv)

	rec := performRequest(srv.router, http.MethodGet, "/classify/last", token, nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestAnalyticsEndpoints(t *testing.T) {
	srv := setupRouter(t, nil, nil, nil)

	for _, path := range []string{"/form", "/analytics", "/insights"} {
		rec := performRequest(srv.router, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct == "" {
			t.Fatalf("expected content type for %s", path)
		}
	}

	rec := performRequest(srv.router, http.MethodGet, "/form", "", nil)
	var form service.FormOptions
	if err := json.Unmarshal(rec.Body.Bytes(), &form); err != nil {
		t.Fatalf("decode form: %v", err)
	}
	if len(form.Platforms) != 7 || form.Defaults.DailyUsageMinutes != 90 {
		t.Fatalf("unexpected form options: %+v", form)
	}
}

func TestHealthz(t *testing.T) {
	srv := setupRouter(t, nil, nil, map[string]HealthCheck{
		"redis": func(context.Context) error { return nil },
	})
	rec := performRequest(srv.router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	srv = setupRouter(t, nil, nil, map[string]HealthCheck{
		"postgres": func(context.Context) error { return errors.New("down") },
	})
	rec = performRequest(srv.router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := setupRouter(t, nil, nil, nil)
	token := newSessionToken(t, srv)
	performRequest(srv.router, http.MethodPost, "/classify", token, scenarioBody())

	rec := performRequest(srv.router, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("emotion_classifier_classifications_total")) {
		t.Fatalf("expected classification counter in metrics output")
	}
}
