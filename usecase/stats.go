package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidUserID = errors.New("invalid user ID")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidDays   = errors.New("days out of range")
)

// UserFinder is the user lookup the stats service needs.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

// TaskAggregator is the slice of the task repository the analytics
// services consume.
type TaskAggregator interface {
	StatusBreakdown(ctx context.Context, userID primitive.ObjectID) (*model.TaskStats, error)
	CompletionsByDay(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]model.DayCount, error)
}

type StatsService struct {
	Users UserFinder
	Tasks TaskAggregator
}

func NewStatsService(users UserFinder, tasks TaskAggregator) *StatsService {
	return &StatsService{Users: users, Tasks: tasks}
}

// GetUserStats produces the per-status and per-priority snapshot for a user,
// with the completion rate derived from the counts.
func (svc *StatsService) GetUserStats(ctx context.Context, userID string) (*model.TaskStats, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := svc.Users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stats, err := svc.Tasks.StatusBreakdown(ctx, uid)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		// No tasks at all. The aggregation returns no rows here, so the
		// zero snapshot has to be built explicitly.
		return &model.TaskStats{}, nil
	}

	stats.CompletionRate = completionRate(stats.Completed, stats.TotalTasks)
	return stats, nil
}

// completionRate is the completed share as a percentage with one decimal
// place. Zero totals yield zero.
func completionRate(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
