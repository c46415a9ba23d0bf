//go:build api

package testdb

import (
	"context"
	"time"

	"ecobin-portal/internal/database"
	"ecobin-portal/internal/models"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContainer runs the reward ledger database for API tests.
type MongoContainer struct {
	Container *mongodb.MongoDBContainer
	URI       string
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupMongoDB starts a MongoDB testcontainer. The caller terminates it with
// Cleanup, normally from TestMain.
func SetupMongoDB(ctx context.Context, dbName string) (*MongoContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return nil, err
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err == nil {
		err = client.Ping(ctx, nil)
	}
	if err != nil {
		if client != nil {
			_ = client.Disconnect(ctx)
		}
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &MongoContainer{
		Container: container,
		URI:       uri,
		Client:    client,
		Database:  client.Database(dbName),
	}, nil
}

// Cleanup disconnects and terminates the container.
func (mc *MongoContainer) Cleanup(ctx context.Context) error {
	if mc.Client != nil {
		_ = mc.Client.Disconnect(ctx)
	}
	if mc.Container != nil {
		return mc.Container.Terminate(ctx)
	}
	return nil
}

// ClearClaims empties the reward ledger, keeping its indexes.
func (mc *MongoContainer) ClearClaims(ctx context.Context) error {
	_, err := mc.Database.Collection(database.RewardClaimsCollection).DeleteMany(ctx, bson.M{})
	return err
}

// Claims returns every ledger entry for disposalID.
func (mc *MongoContainer) Claims(ctx context.Context, disposalID string) ([]models.RewardClaim, error) {
	cursor, err := mc.Database.Collection(database.RewardClaimsCollection).Find(ctx, bson.M{"disposalId": disposalID})
	if err != nil {
		return nil, err
	}
	var claims []models.RewardClaim
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}
