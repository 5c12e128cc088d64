package repository

import (
	"context"
	"time"

	"main/config"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TaskRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves the MongoDB collection holding the task backend's documents
func GetTaskRepo(client *mongo.Client) *TaskRepo {
	cfg := config.LoadDatabaseConfig()
	collectionName := config.GetEnvAsString("TASKS_COLLECTION", "tasks")
	return &TaskRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(collectionName),
	}
}

// StatusBreakdown counts a user's tasks by status and priority in a single
// aggregation pass. Returns nil when the user has no tasks: $group over zero
// matching documents yields no rows at all, not a zeroed row.
func (r *TaskRepo) StatusBreakdown(ctx context.Context, userID primitive.ObjectID) (*model.TaskStats, error) {
	timer := utils.TrackDBOperation("aggregate", "tasks")
	defer timer.ObserveDuration()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user": userID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"totalTasks":     bson.M{"$sum": 1},
			"completed":      condCount("$status", string(model.StatusCompleted)),
			"inProgress":     condCount("$status", string(model.StatusInProgress)),
			"todo":           condCount("$status", string(model.StatusTodo)),
			"highPriority":   condCount("$priority", string(model.PriorityHigh)),
			"mediumPriority": condCount("$priority", string(model.PriorityMedium)),
			"lowPriority":    condCount("$priority", string(model.PriorityLow)),
		}}},
	}

	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.TrackError("database", "task_stats_aggregation_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.TaskStats
	if err = cursor.All(ctx, &results); err != nil {
		utils.TrackError("database", "task_stats_decode_failed")
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// CompletionsByDay groups a user's completed tasks since the given time into
// UTC calendar-day buckets, sorted ascending. Days without completions are
// absent from the result.
func (r *TaskRepo) CompletionsByDay(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]model.DayCount, error) {
	timer := utils.TrackDBOperation("aggregate", "tasks")
	defer timer.ObserveDuration()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"user":      userID,
			"status":    string(model.StatusCompleted),
			"updatedAt": bson.M{"$gte": since},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$updatedAt",
			}},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.TrackError("database", "completions_aggregation_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.DayCount
	if err = cursor.All(ctx, &results); err != nil {
		utils.TrackError("database", "completions_decode_failed")
		return nil, err
	}
	return results, nil
}

func condCount(field, value string) bson.M {
	return bson.M{"$sum": bson.M{
		"$cond": bson.A{bson.M{"$eq": bson.A{field, value}}, 1, 0},
	}}
}
