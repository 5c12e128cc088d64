package utils

import (
	"context"
	"log"

	"main/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the process-wide MongoDB client. It is safe for concurrent
// use and is connected once at startup.
var MongoClient *mongo.Client

// InitMongoClient connects the shared client using the supplied configuration.
func InitMongoClient(cfg config.DatabaseConfig) {
	if cfg.URI == "" {
		log.Fatal("MongoDB URI is not set")
	}

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime)

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	MongoClient = client
}

// CloseMongoClient releases the shared client during shutdown.
func CloseMongoClient(ctx context.Context) {
	if MongoClient == nil {
		return
	}
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting MongoDB client: %v", err)
	}
}
