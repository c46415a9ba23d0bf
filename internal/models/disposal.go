package models

import "time"

// DisposalView is the browser facing state of a disposal workflow.
type DisposalView struct {
	ID             string     `json:"id" example:"5b0b1f0e-7b8c-4a53-9a43-5f2f8d0a7c11"`
	State          string     `json:"state" example:"done"`
	Outcome        string     `json:"outcome,omitempty" example:"success"`
	HasImage       bool       `json:"hasImage"`
	ImageName      string     `json:"imageName,omitempty" example:"bottle.jpg"`
	Preview        string     `json:"preview,omitempty"`
	SelectedBinID  *int       `json:"selectedBinId,omitempty" example:"3"`
	Classification string     `json:"classification,omitempty" example:"Plastic"`
	Result         string     `json:"result,omitempty" example:"Accepted: Plastic"`
	RewardMessage  string     `json:"rewardMessage,omitempty" example:"You earned 10 points!"`
	RewardError    string     `json:"rewardError,omitempty"`
	Error          string     `json:"error,omitempty"`
	BinOpen        bool       `json:"binOpen"`
	BinOpenUntil   *time.Time `json:"binOpenUntil,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// BinSelectionView is the bin selection modal content.
type BinSelectionView struct {
	DisposalID string      `json:"disposalId"`
	Search     string      `json:"search,omitempty"`
	Bins       []BinOption `json:"bins"`
}

// SelectBinRequest picks a bin from the selection modal.
type SelectBinRequest struct {
	BinID int `json:"binId" binding:"required,gt=0" example:"3"`
}

// ClassificationResult is the classifier response body.
type ClassificationResult struct {
	Classification string `json:"classification"`
}
