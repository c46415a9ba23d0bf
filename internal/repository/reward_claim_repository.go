package repository

import (
	"context"
	"errors"
	"time"

	"ecobin-portal/internal/database"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RewardClaimRepository is the reward reconciliation ledger.
type RewardClaimRepository interface {
	Create(ctx context.Context, claim *models.RewardClaim) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.RewardClaim, error)
	FindPending(ctx context.Context) ([]models.RewardClaim, error)
	// RecordAttempt increments the attempt counter and stores lastError.
	RecordAttempt(ctx context.Context, id primitive.ObjectID, lastError string) error
	MarkCredited(ctx context.Context, id primitive.ObjectID) error
	MarkFailed(ctx context.Context, id primitive.ObjectID, lastError string) error
	EnsureIndexes(ctx context.Context) error
}

type rewardClaimRepository struct {
	collection *mongo.Collection
}

// NewRewardClaimRepository creates a new RewardClaimRepository
func NewRewardClaimRepository(db *mongo.Database) RewardClaimRepository {
	return &rewardClaimRepository{
		collection: db.Collection(database.RewardClaimsCollection),
	}
}

// Create inserts a claim and sets its generated ID.
func (r *rewardClaimRepository) Create(ctx context.Context, claim *models.RewardClaim) error {
	now := time.Now()
	claim.CreatedAt = now
	claim.UpdatedAt = now
	if claim.Status == "" {
		claim.Status = models.ClaimPending
	}

	result, err := r.collection.InsertOne(ctx, claim)
	if err != nil {
		return err
	}

	claim.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a claim by its ID
func (r *rewardClaimRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.RewardClaim, error) {
	var claim models.RewardClaim

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&claim)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRewardClaimNotFound
		}
		return nil, err
	}

	return &claim, nil
}

// FindPending returns unsettled claims, oldest first.
func (r *rewardClaimRepository) FindPending(ctx context.Context) ([]models.RewardClaim, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"status": models.ClaimPending}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var claims []models.RewardClaim
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if claims == nil {
		claims = []models.RewardClaim{}
	}

	return claims, nil
}

func (r *rewardClaimRepository) RecordAttempt(ctx context.Context, id primitive.ObjectID, lastError string) error {
	update := bson.M{
		"$inc": bson.M{"attempts": 1},
		"$set": bson.M{"lastError": lastError, "updatedAt": time.Now()},
	}
	return r.updateOne(ctx, id, update)
}

func (r *rewardClaimRepository) MarkCredited(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$inc":   bson.M{"attempts": 1},
		"$set":   bson.M{"status": models.ClaimCredited, "updatedAt": time.Now()},
		"$unset": bson.M{"lastError": ""},
	}
	return r.updateOne(ctx, id, update)
}

func (r *rewardClaimRepository) MarkFailed(ctx context.Context, id primitive.ObjectID, lastError string) error {
	update := bson.M{
		"$set": bson.M{"status": models.ClaimFailed, "lastError": lastError, "updatedAt": time.Now()},
	}
	return r.updateOne(ctx, id, update)
}

func (r *rewardClaimRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrRewardClaimNotFound
	}
	return nil
}

// EnsureIndexes creates the ledger indexes.
func (r *rewardClaimRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "idempotencyKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}},
		},
	})
	return err
}
