package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RewardClaimStatus represents the settlement state of a reward.
type RewardClaimStatus string

const (
	ClaimPending  RewardClaimStatus = "pending"
	ClaimCredited RewardClaimStatus = "credited"
	ClaimFailed   RewardClaimStatus = "failed"
)

// RewardClaim records one attempt to credit points for an accepted deposit.
// The idempotency key is sent with every credit call for the claim.
type RewardClaim struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	IdempotencyKey string             `json:"idempotencyKey" bson:"idempotencyKey"`
	DisposalID     string             `json:"disposalId" bson:"disposalId"`
	UserEmail      string             `json:"userEmail" bson:"userEmail"`
	BinID          int                `json:"binId" bson:"binId"`
	Points         int                `json:"points" bson:"points"`
	Status         RewardClaimStatus  `json:"status" bson:"status"`
	Attempts       int                `json:"attempts" bson:"attempts"`
	LastError      string             `json:"lastError,omitempty" bson:"lastError,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// GivePointsRequest is the backend payload for crediting points.
type GivePointsRequest struct {
	UserEmail string `json:"UserEmail"`
	Points    int    `json:"Points"`
}
