package main

import (
	"context"
	"log"
	"time"

	"ecobin-portal/internal/config"
	"ecobin-portal/internal/database"
	"ecobin-portal/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Indexes the server relies on
	if err := repository.NewRewardClaimRepository(mongoDB.Database).EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create reward claim indexes: %v", err)
	}
	log.Printf("Created reward claim indexes on %s", database.RewardClaimsCollection)

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

// createIndexes adds the indexes used when auditing the ledger by hand.
func createIndexes(ctx context.Context, db *mongo.Database) {
	createIndex(ctx, db, database.RewardClaimsCollection, bson.D{
		{Key: "userEmail", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)
	createIndex(ctx, db, database.RewardClaimsCollection, bson.D{{Key: "disposalId", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}
