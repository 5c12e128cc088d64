package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultWindowDays = 30
	MinWindowDays     = 1
	MaxWindowDays     = 3650
)

type ProductivityService struct {
	Tasks TaskAggregator
}

func NewProductivityService(tasks TaskAggregator) *ProductivityService {
	return &ProductivityService{Tasks: tasks}
}

// GetProductivity builds the day-bucketed completion trend over the last
// `days` days, one entry per calendar day including days without
// completions.
func (svc *ProductivityService) GetProductivity(ctx context.Context, userID string, days int) (*model.ProductivityReport, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}
	if days < MinWindowDays || days > MaxWindowDays {
		return nil, ErrInvalidDays
	}

	// Pin a single timestamp so the query bound and the fill loop agree on
	// where the window ends.
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -days)

	counts, err := svc.Tasks.CompletionsByDay(ctx, uid, start)
	if err != nil {
		return nil, err
	}

	daily := fillDailyData(counts, start, now)

	total := 0
	for _, day := range daily {
		total += day.Completed
	}

	return &model.ProductivityReport{
		Period:                   fmt.Sprintf("Last %d days", days),
		TotalCompleted:           total,
		AverageCompletionsPerDay: roundTo(float64(total)/float64(max(len(daily), 1)), 2),
		DailyData:                daily,
	}, nil
}

// fillDailyData walks every calendar day from start to end inclusive and
// produces one entry per day, defaulting days without completions to zero.
func fillDailyData(counts []model.DayCount, start, end time.Time) []model.DailyCompletion {
	byDate := make(map[string]int, len(counts))
	for _, c := range counts {
		byDate[c.Date] = c.Count
	}

	var daily []model.DailyCompletion
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		date := current.Format("2006-01-02")
		daily = append(daily, model.DailyCompletion{Date: date, Completed: byDate[date]})
	}
	return daily
}

func roundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
