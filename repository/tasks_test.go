package repository

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestStatusBreakdown(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("user with tasks", func(mt *mtest.T) {
		repo := &TaskRepo{MongoCollection: mt.Coll}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "quicktask.tasks", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: nil},
				{Key: "totalTasks", Value: 10},
				{Key: "completed", Value: 5},
				{Key: "inProgress", Value: 3},
				{Key: "todo", Value: 2},
				{Key: "highPriority", Value: 4},
				{Key: "mediumPriority", Value: 4},
				{Key: "lowPriority", Value: 2},
			}))

		stats, err := repo.StatusBreakdown(context.Background(), primitive.NewObjectID())
		if err != nil {
			mt.Fatalf("Unexpected error: %v", err)
		}
		if stats == nil {
			mt.Fatal("Expected stats, got nil")
		}
		if stats.TotalTasks != 10 || stats.Completed != 5 || stats.InProgress != 3 ||
			stats.Todo != 2 || stats.HighPriority != 4 || stats.MediumPriority != 4 ||
			stats.LowPriority != 2 {
			mt.Errorf("Unexpected stats: %+v", stats)
		}
	})

	mt.Run("user with no tasks yields no rows", func(mt *mtest.T) {
		repo := &TaskRepo{MongoCollection: mt.Coll}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "quicktask.tasks", mtest.FirstBatch))

		stats, err := repo.StatusBreakdown(context.Background(), primitive.NewObjectID())
		if err != nil {
			mt.Fatalf("Unexpected error: %v", err)
		}
		if stats != nil {
			mt.Errorf("Expected nil stats for empty aggregation, got %+v", stats)
		}
	})

	mt.Run("aggregation failure", func(mt *mtest.T) {
		repo := &TaskRepo{MongoCollection: mt.Coll}

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "interrupted at shutdown",
		}))

		if _, err := repo.StatusBreakdown(context.Background(), primitive.NewObjectID()); err == nil {
			mt.Error("Expected error from failed aggregation, got nil")
		}
	})
}

func TestCompletionsByDay(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("buckets decode in order", func(mt *mtest.T) {
		repo := &TaskRepo{MongoCollection: mt.Coll}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "quicktask.tasks", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "2026-08-28"}, {Key: "count", Value: 2}},
			bson.D{{Key: "_id", Value: "2026-08-30"}, {Key: "count", Value: 1}},
		))

		since := time.Now().UTC().AddDate(0, 0, -7)
		counts, err := repo.CompletionsByDay(context.Background(), primitive.NewObjectID(), since)
		if err != nil {
			mt.Fatalf("Unexpected error: %v", err)
		}
		if len(counts) != 2 {
			mt.Fatalf("Expected 2 day buckets, got %d", len(counts))
		}
		if counts[0].Date != "2026-08-28" || counts[0].Count != 2 {
			mt.Errorf("Unexpected first bucket: %+v", counts[0])
		}
		if counts[1].Date != "2026-08-30" || counts[1].Count != 1 {
			mt.Errorf("Unexpected second bucket: %+v", counts[1])
		}
	})

	mt.Run("no completions in window", func(mt *mtest.T) {
		repo := &TaskRepo{MongoCollection: mt.Coll}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "quicktask.tasks", mtest.FirstBatch))

		counts, err := repo.CompletionsByDay(context.Background(), primitive.NewObjectID(),
			time.Now().UTC().AddDate(0, 0, -30))
		if err != nil {
			mt.Fatalf("Unexpected error: %v", err)
		}
		if len(counts) != 0 {
			mt.Errorf("Expected no buckets, got %+v", counts)
		}
	})
}
