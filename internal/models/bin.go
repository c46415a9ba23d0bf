package models

import "math"

// Availability values accepted when creating a bin.
const (
	AvailabilityAvailable = "available"
	AvailabilityYes       = "yes"
	AvailabilityNo        = "no"
)

// Default values for a new bin.
const (
	DefaultBinCapacity      = 2000
	DefaultBinCurrentWeight = 0
)

// Bin is a physical smart waste receptacle.
type Bin struct {
	ID            int     `json:"id" example:"3"`
	BinCode       string  `json:"binCode" example:"b-101"`
	Location      string  `json:"location" example:"Library entrance"`
	Availability  string  `json:"availability" example:"available"`
	Capacity      float64 `json:"capacity" example:"2000"`
	CurrentWeight float64 `json:"currentWeight" example:"350"`
}

// RecordID implements the table record contract.
func (b Bin) RecordID() int {
	return b.ID
}

// FillPercentage returns currentWeight/capacity as a rounded percentage,
// zero for bins without capacity. Halves round up.
func (b Bin) FillPercentage() int {
	if b.Capacity <= 0 {
		return 0
	}
	return int(math.Floor(b.CurrentWeight/b.Capacity*100 + 0.5))
}

// IsFull reports whether the bin can no longer accept deposits.
func (b Bin) IsFull() bool {
	return b.CurrentWeight >= b.Capacity
}

// CreateBinRequest is the payload for adding a bin.
type CreateBinRequest struct {
	BinCode       string   `json:"binCode" binding:"required,bincode" example:"b-101"`
	Location      string   `json:"location" binding:"required" example:"Library entrance"`
	Availability  string   `json:"availability" binding:"required,oneof=available yes no" example:"available"`
	Capacity      *float64 `json:"capacity" binding:"omitempty,gte=1" example:"2000"`
	CurrentWeight *float64 `json:"currentWeight" binding:"omitempty,gte=0" example:"0"`
}

// ToBin applies defaults and returns the record to post to the backend.
func (r *CreateBinRequest) ToBin() Bin {
	bin := Bin{
		BinCode:       r.BinCode,
		Location:      r.Location,
		Availability:  r.Availability,
		Capacity:      DefaultBinCapacity,
		CurrentWeight: DefaultBinCurrentWeight,
	}
	if r.Capacity != nil {
		bin.Capacity = *r.Capacity
	}
	if r.CurrentWeight != nil {
		bin.CurrentWeight = *r.CurrentWeight
	}
	return bin
}

// BinOption is a bin as offered in the disposal selection modal.
type BinOption struct {
	Bin
	FillPercentage int  `json:"fillPercentage" example:"18"`
	Selectable     bool `json:"selectable" example:"true"`
}

// NewBinOption decorates a bin for the selection modal.
func NewBinOption(b Bin) BinOption {
	pct := b.FillPercentage()
	return BinOption{Bin: b, FillPercentage: pct, Selectable: pct < 100}
}
