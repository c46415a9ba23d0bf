// Package workflow holds the disposal state machine. It performs no I/O;
// callers drive it with the results of the classifier and backend calls.
package workflow

import (
	"fmt"
	"strings"
	"time"

	"ecobin-portal/internal/classifier"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
)

// State is a disposal workflow state.
type State string

const (
	StateIdle          State = "idle"
	StateImageSelected State = "image_selected"
	StateBinModalOpen  State = "bin_modal_open"
	StateClassifying   State = "classifying"
	StateDepositing    State = "depositing"
	StateRewarding     State = "rewarding"
	StateDone          State = "done"
	StateError         State = "error"
)

// Outcome qualifies StateDone.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeRejected Outcome = "rejected"
)

// RejectedMessage is the result shown for items the classifier cannot identify.
const RejectedMessage = "Rejected: Unknown item."

// Image is the stored item image of a disposal.
type Image struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Disposal is one run of select image, pick bin, classify, deposit, reward.
type Disposal struct {
	ID             string       `json:"id"`
	UserEmail      string       `json:"userEmail"`
	State          State        `json:"state"`
	Outcome        Outcome      `json:"outcome,omitempty"`
	Image          *Image       `json:"image,omitempty"`
	Bins           []models.Bin `json:"bins,omitempty"`
	SelectedBinID  *int         `json:"selectedBinId,omitempty"`
	Classification string       `json:"classification,omitempty"`
	Result         string       `json:"result,omitempty"`
	RewardMessage  string       `json:"rewardMessage,omitempty"`
	RewardError    string       `json:"rewardError,omitempty"`
	Error          string       `json:"error,omitempty"`
	BinOpenUntil   *time.Time   `json:"binOpenUntil,omitempty"`
	ClaimID        string       `json:"claimId,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// New starts an idle disposal owned by email.
func New(id, email string, now time.Time) *Disposal {
	return &Disposal{
		ID:        id,
		UserEmail: email,
		State:     StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Busy reports whether the outbound chain is in flight.
func (d *Disposal) Busy() bool {
	switch d.State {
	case StateClassifying, StateDepositing, StateRewarding:
		return true
	}
	return false
}

// Recover fails a chain left in flight for longer than staleAfter, which
// only happens when the process running it died. The image is kept so the
// user can select a bin again. Reports whether d changed.
func (d *Disposal) Recover(staleAfter time.Duration, now time.Time) bool {
	if !d.Busy() || now.Sub(d.UpdatedAt) < staleAfter {
		return false
	}
	d.Fail(apperrors.ErrChainInterrupted, now)
	return true
}

// Settled reports whether the last chain has finished.
func (d *Disposal) Settled() bool {
	return d.State == StateDone || d.State == StateError
}

// SelectImage attaches img and returns the image it replaces, if any.
func (d *Disposal) SelectImage(img Image, now time.Time) (*Image, error) {
	if d.Busy() || d.State == StateBinModalOpen {
		return nil, apperrors.ErrInvalidTransition
	}
	previous := d.Image
	d.Image = &img
	d.State = StateImageSelected
	d.touch(now)
	return previous, nil
}

// ReadyForBins checks that the bin modal may be opened.
func (d *Disposal) ReadyForBins() error {
	if d.Busy() || d.State == StateBinModalOpen {
		return apperrors.ErrInvalidTransition
	}
	if d.Image == nil {
		return apperrors.ErrNoImage
	}
	return nil
}

// OpenBinModal opens the selection modal over bins. The list is kept for
// the lifetime of the modal.
func (d *Disposal) OpenBinModal(bins []models.Bin, now time.Time) error {
	if err := d.ReadyForBins(); err != nil {
		return err
	}
	if bins == nil {
		bins = []models.Bin{}
	}
	d.Bins = bins
	d.State = StateBinModalOpen
	d.touch(now)
	return nil
}

// SearchBins filters the modal list by case-insensitive location substring.
func (d *Disposal) SearchBins(search string) ([]models.BinOption, error) {
	if d.State != StateBinModalOpen {
		return nil, apperrors.ErrInvalidTransition
	}
	needle := strings.ToLower(search)
	options := make([]models.BinOption, 0, len(d.Bins))
	for _, b := range d.Bins {
		if strings.Contains(strings.ToLower(b.Location), needle) {
			options = append(options, models.NewBinOption(b))
		}
	}
	return options, nil
}

// CloseBinModal dismisses the modal without selecting a bin.
func (d *Disposal) CloseBinModal(now time.Time) error {
	if d.State != StateBinModalOpen {
		return apperrors.ErrInvalidTransition
	}
	d.Bins = nil
	d.State = StateImageSelected
	d.touch(now)
	return nil
}

// SelectBin picks a bin from the modal and starts classification. A full
// bin is refused and the modal stays open.
func (d *Disposal) SelectBin(binID int, now time.Time) (models.Bin, error) {
	if d.State != StateBinModalOpen {
		return models.Bin{}, apperrors.ErrInvalidTransition
	}
	var (
		bin   models.Bin
		found bool
	)
	for _, b := range d.Bins {
		if b.ID == binID {
			bin, found = b, true
			break
		}
	}
	if !found {
		return models.Bin{}, apperrors.ErrBinNotInSelection
	}
	if bin.IsFull() {
		d.Error = apperrors.ErrBinFull.Error()
		d.touch(now)
		return bin, apperrors.ErrBinFull
	}

	id := bin.ID
	d.SelectedBinID = &id
	d.Bins = nil
	d.Outcome = ""
	d.Classification = ""
	d.Result = ""
	d.RewardMessage = ""
	d.RewardError = ""
	d.Error = ""
	d.ClaimID = ""
	d.State = StateClassifying
	d.touch(now)
	return bin, nil
}

// Classified records the classifier label. It reports whether the item was
// accepted; rejected items finish the workflow without a deposit.
func (d *Disposal) Classified(label string, now time.Time) (bool, error) {
	if d.State != StateClassifying {
		return false, apperrors.ErrInvalidTransition
	}
	d.Classification = label
	d.touch(now)
	if label == classifier.Unknown {
		d.Result = RejectedMessage
		d.Outcome = OutcomeRejected
		d.State = StateDone
		return false, nil
	}
	d.Result = "Accepted: " + label
	d.State = StateDepositing
	return true, nil
}

// Deposited records the deposit and opens the bin for cue.
func (d *Disposal) Deposited(cue time.Duration, now time.Time) error {
	if d.State != StateDepositing {
		return apperrors.ErrInvalidTransition
	}
	until := now.Add(cue)
	d.BinOpenUntil = &until
	d.State = StateRewarding
	d.touch(now)
	return nil
}

// Rewarded finishes the workflow successfully after the points were credited.
func (d *Disposal) Rewarded(points int, now time.Time) error {
	if d.State != StateRewarding {
		return apperrors.ErrInvalidTransition
	}
	d.RewardMessage = fmt.Sprintf("You earned %d points!", points)
	d.Outcome = OutcomeSuccess
	d.State = StateDone
	d.touch(now)
	return nil
}

// RewardFailed finishes the workflow successfully with a reward error.
// The deposit was recorded so the outcome is still a success.
func (d *Disposal) RewardFailed(reason error, now time.Time) error {
	if d.State != StateRewarding {
		return apperrors.ErrInvalidTransition
	}
	d.RewardError = reason.Error()
	d.Outcome = OutcomeSuccess
	d.State = StateDone
	d.touch(now)
	return nil
}

// Fail aborts the chain with reason.
func (d *Disposal) Fail(reason error, now time.Time) {
	d.Error = reason.Error()
	d.State = StateError
	d.touch(now)
}

// ClearImage drops the image reference and returns it for deletion.
func (d *Disposal) ClearImage(now time.Time) *Image {
	img := d.Image
	d.Image = nil
	if d.State == StateImageSelected {
		d.State = StateIdle
	}
	d.touch(now)
	return img
}

// BinOpen reports whether the bin-opening cue is visible at now.
func (d *Disposal) BinOpen(now time.Time) bool {
	return d.BinOpenUntil != nil && now.Before(*d.BinOpenUntil)
}

// View renders the browser facing state. preview is a display URL for the
// held image.
func (d *Disposal) View(now time.Time, preview string) models.DisposalView {
	v := models.DisposalView{
		ID:             d.ID,
		State:          string(d.State),
		Outcome:        string(d.Outcome),
		HasImage:       d.Image != nil,
		Preview:        preview,
		SelectedBinID:  d.SelectedBinID,
		Classification: d.Classification,
		Result:         d.Result,
		RewardMessage:  d.RewardMessage,
		RewardError:    d.RewardError,
		Error:          d.Error,
		BinOpen:        d.BinOpen(now),
		BinOpenUntil:   d.BinOpenUntil,
		UpdatedAt:      d.UpdatedAt,
	}
	if d.Image != nil {
		v.ImageName = d.Image.Name
	}
	return v
}

func (d *Disposal) touch(now time.Time) {
	d.UpdatedAt = now
}
