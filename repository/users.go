package repository

import (
	"context"
	"errors"

	"main/config"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves the MongoDB collection for users
func GetUserRepo(client *mongo.Client) *UserRepo {
	cfg := config.LoadDatabaseConfig()
	collectionName := config.GetEnvAsString("USERS_COLLECTION", "users")
	return &UserRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(collectionName),
	}
}

// FindByID looks up a user document by its ObjectID. A missing user is
// (nil, nil), not an error.
func (r *UserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	timer := utils.TrackDBOperation("findOne", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "user_lookup_failed")
		return nil, err
	}
	return &user, nil
}
