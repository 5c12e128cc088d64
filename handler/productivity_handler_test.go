package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/model"
	"main/usecase"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupProductivityRouter(provider ProductivityProvider) *gin.Engine {
	router := gin.New()
	productivityHandler := NewProductivityHandler(provider)
	router.GET("/api/analytics/productivity/:userId", productivityHandler.GetProductivity)
	return router
}

func TestGetProductivityHandler(t *testing.T) {
	sampleReport := &model.ProductivityReport{
		Period:                   "Last 7 days",
		TotalCompleted:           1,
		AverageCompletionsPerDay: 0.13,
		DailyData: []model.DailyCompletion{
			{Date: "2026-08-25", Completed: 0},
			{Date: "2026-08-26", Completed: 1},
		},
	}

	tests := []struct {
		name         string
		userID       string
		query        string
		provider     *stubProductivityProvider
		expectedCode int
		wantCalled   bool
		wantDays     int
	}{
		{
			name:         "default window",
			userID:       primitive.NewObjectID().Hex(),
			provider:     &stubProductivityProvider{report: sampleReport},
			expectedCode: http.StatusOK,
			wantCalled:   true,
			wantDays:     30,
		},
		{
			name:         "explicit window",
			userID:       primitive.NewObjectID().Hex(),
			query:        "?days=7",
			provider:     &stubProductivityProvider{report: sampleReport},
			expectedCode: http.StatusOK,
			wantCalled:   true,
			wantDays:     7,
		},
		{
			name:         "malformed user ID",
			userID:       "zzz",
			provider:     &stubProductivityProvider{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "non-numeric days",
			userID:       primitive.NewObjectID().Hex(),
			query:        "?days=soon",
			provider:     &stubProductivityProvider{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "negative days",
			userID:       primitive.NewObjectID().Hex(),
			query:        "?days=-5",
			provider:     &stubProductivityProvider{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "oversized window rejected by the service",
			userID:       primitive.NewObjectID().Hex(),
			query:        "?days=0",
			provider:     &stubProductivityProvider{err: usecase.ErrInvalidDays},
			expectedCode: http.StatusBadRequest,
			wantCalled:   true,
			wantDays:     0,
		},
		{
			name:         "store failure",
			userID:       primitive.NewObjectID().Hex(),
			provider:     &stubProductivityProvider{err: errTest},
			expectedCode: http.StatusInternalServerError,
			wantCalled:   true,
			wantDays:     30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupProductivityRouter(tt.provider)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet,
				"/api/analytics/productivity/"+tt.userID+tt.query, nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Errorf("Expected status %d, got %d\nResponse body: %s",
					tt.expectedCode, w.Code, w.Body.String())
			}
			if tt.provider.called != tt.wantCalled {
				t.Errorf("Expected provider called=%v, got %v", tt.wantCalled, tt.provider.called)
			}
			if tt.wantCalled && tt.provider.gotDays != tt.wantDays {
				t.Errorf("Expected days=%d passed to service, got %d", tt.wantDays, tt.provider.gotDays)
			}
		})
	}
}

func TestGetProductivityHandlerBody(t *testing.T) {
	report := &model.ProductivityReport{
		Period:                   "Last 2 days",
		TotalCompleted:           3,
		AverageCompletionsPerDay: 1.0,
		DailyData: []model.DailyCompletion{
			{Date: "2026-08-30", Completed: 1},
			{Date: "2026-08-31", Completed: 0},
			{Date: "2026-09-01", Completed: 2},
		},
	}
	provider := &stubProductivityProvider{report: report}
	router := setupProductivityRouter(provider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/analytics/productivity/"+primitive.NewObjectID().Hex()+"?days=2", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var body model.ProductivityReport
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if body.Period != report.Period || body.TotalCompleted != report.TotalCompleted {
		t.Errorf("Unexpected report: %+v", body)
	}
	if len(body.DailyData) != 3 || body.DailyData[2].Completed != 2 {
		t.Errorf("Unexpected dailyData: %+v", body.DailyData)
	}
}
