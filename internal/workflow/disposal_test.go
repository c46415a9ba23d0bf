package workflow

import (
	"errors"
	"testing"
	"time"

	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func testBins() []models.Bin {
	return []models.Bin{
		{ID: 1, BinCode: "b-1", Location: "Library Entrance", Capacity: 2000, CurrentWeight: 500},
		{ID: 2, BinCode: "b-2", Location: "Cafeteria", Capacity: 1000, CurrentWeight: 1000},
		{ID: 3, BinCode: "b-3", Location: "Main library", Capacity: 1000, CurrentWeight: 999},
	}
}

func withModal(t *testing.T) *Disposal {
	t.Helper()
	d := New("d-1", "thandi@example.com", t0)
	_, err := d.SelectImage(Image{Key: "disposals/d-1/item", Name: "bottle.jpg", ContentType: "image/jpeg", Size: 10}, t0)
	require.NoError(t, err)
	require.NoError(t, d.OpenBinModal(testBins(), t0))
	return d
}

func TestNew(t *testing.T) {
	d := New("d-1", "thandi@example.com", t0)

	assert.Equal(t, StateIdle, d.State)
	assert.Equal(t, "thandi@example.com", d.UserEmail)
	assert.Nil(t, d.Image)
	assert.False(t, d.Busy())
	assert.False(t, d.Settled())
}

func TestDisposal_ReadyForBins(t *testing.T) {
	t.Run("no image is refused without state change", func(t *testing.T) {
		d := New("d-1", "a@b.c", t0)

		err := d.OpenBinModal(testBins(), t0)

		assert.ErrorIs(t, err, apperrors.ErrNoImage)
		assert.Equal(t, StateIdle, d.State)
		assert.Nil(t, d.Bins)
	})

	t.Run("modal already open", func(t *testing.T) {
		d := withModal(t)

		assert.ErrorIs(t, d.ReadyForBins(), apperrors.ErrInvalidTransition)
	})
}

func TestDisposal_SearchBins(t *testing.T) {
	d := withModal(t)

	tests := []struct {
		name     string
		search   string
		expected []int
	}{
		{"empty search returns all", "", []int{1, 2, 3}},
		{"case insensitive substring", "LIBRARY", []int{1, 3}},
		{"no match", "gym", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, err := d.SearchBins(tt.search)
			require.NoError(t, err)

			ids := make([]int, 0, len(options))
			for _, o := range options {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	t.Run("decorates fill percentage and selectability", func(t *testing.T) {
		options, err := d.SearchBins("")
		require.NoError(t, err)

		assert.Equal(t, 25, options[0].FillPercentage)
		assert.True(t, options[0].Selectable)
		assert.Equal(t, 100, options[1].FillPercentage)
		assert.False(t, options[1].Selectable)
		// 99.9 rounds to 100
		assert.Equal(t, 100, options[2].FillPercentage)
		assert.False(t, options[2].Selectable)
	})

	t.Run("modal closed", func(t *testing.T) {
		closed := New("d-2", "a@b.c", t0)
		_, err := closed.SearchBins("")
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	})
}

func TestDisposal_SelectBin(t *testing.T) {
	t.Run("full bin keeps the modal open", func(t *testing.T) {
		d := withModal(t)

		_, err := d.SelectBin(2, t0)

		assert.ErrorIs(t, err, apperrors.ErrBinFull)
		assert.Equal(t, StateBinModalOpen, d.State)
		assert.Equal(t, "Selected bin is full. Please choose another bin.", d.Error)
		assert.Nil(t, d.SelectedBinID)
		assert.Len(t, d.Bins, 3)
	})

	t.Run("unknown bin", func(t *testing.T) {
		d := withModal(t)

		_, err := d.SelectBin(42, t0)

		assert.ErrorIs(t, err, apperrors.ErrBinNotInSelection)
		assert.Equal(t, StateBinModalOpen, d.State)
	})

	t.Run("bin with room starts classification", func(t *testing.T) {
		d := withModal(t)
		d.Error = "stale"

		bin, err := d.SelectBin(1, t0)

		require.NoError(t, err)
		assert.Equal(t, 1, bin.ID)
		assert.Equal(t, StateClassifying, d.State)
		require.NotNil(t, d.SelectedBinID)
		assert.Equal(t, 1, *d.SelectedBinID)
		assert.Empty(t, d.Error)
		assert.Nil(t, d.Bins)
		assert.True(t, d.Busy())
	})
}

func TestDisposal_CloseBinModal(t *testing.T) {
	d := withModal(t)

	require.NoError(t, d.CloseBinModal(t0))

	assert.Equal(t, StateImageSelected, d.State)
	assert.Nil(t, d.Bins)
	assert.ErrorIs(t, d.CloseBinModal(t0), apperrors.ErrInvalidTransition)
}

func TestDisposal_RejectedItem(t *testing.T) {
	d := withModal(t)
	_, err := d.SelectBin(1, t0)
	require.NoError(t, err)

	accepted, err := d.Classified("Unknown", t0)

	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Equal(t, StateDone, d.State)
	assert.Equal(t, OutcomeRejected, d.Outcome)
	assert.Equal(t, "Rejected: Unknown item.", d.Result)
	assert.Nil(t, d.BinOpenUntil)
	assert.ErrorIs(t, d.Deposited(4*time.Second, t0), apperrors.ErrInvalidTransition)
}

func TestDisposal_AcceptedItem(t *testing.T) {
	d := withModal(t)
	_, err := d.SelectBin(1, t0)
	require.NoError(t, err)

	accepted, err := d.Classified("Plastic", t0)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, StateDepositing, d.State)
	assert.Equal(t, "Accepted: Plastic", d.Result)

	require.NoError(t, d.Deposited(4000*time.Millisecond, t0))
	assert.Equal(t, StateRewarding, d.State)

	require.NoError(t, d.Rewarded(10, t0))
	assert.Equal(t, StateDone, d.State)
	assert.Equal(t, OutcomeSuccess, d.Outcome)
	assert.Equal(t, "You earned 10 points!", d.RewardMessage)
	assert.True(t, d.Settled())

	t.Run("bin cue is visible until the deadline", func(t *testing.T) {
		assert.True(t, d.BinOpen(t0))
		assert.True(t, d.BinOpen(t0.Add(3999*time.Millisecond)))
		assert.False(t, d.BinOpen(t0.Add(4000*time.Millisecond)))
		assert.False(t, d.BinOpen(t0.Add(time.Minute)))
	})
}

func TestDisposal_RewardFailed(t *testing.T) {
	d := withModal(t)
	_, _ = d.SelectBin(1, t0)
	_, _ = d.Classified("Glass", t0)
	require.NoError(t, d.Deposited(time.Second, t0))

	require.NoError(t, d.RewardFailed(apperrors.ErrRewardFailed, t0))

	assert.Equal(t, StateDone, d.State)
	assert.Equal(t, OutcomeSuccess, d.Outcome)
	assert.Equal(t, "Reward failed.", d.RewardError)
	assert.Empty(t, d.Error)
}

func TestDisposal_Fail(t *testing.T) {
	d := withModal(t)
	_, _ = d.SelectBin(1, t0)

	d.Fail(apperrors.ErrClassificationFailed, t0)

	assert.Equal(t, StateError, d.State)
	assert.Equal(t, "Failed to classify the item.", d.Error)
	assert.True(t, d.Settled())
	_, err := d.Classified("Plastic", t0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestDisposal_Recover(t *testing.T) {
	tests := []struct {
		name      string
		inFlight  bool
		elapsed   time.Duration
		recovered bool
	}{
		{"fresh chain is left running", true, time.Minute, false},
		{"stale chain is failed", true, 2 * time.Minute, true},
		{"disposal not in flight is untouched", false, time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := withModal(t)
			if tt.inFlight {
				_, err := d.SelectBin(1, t0)
				require.NoError(t, err)
			}
			before := d.State

			got := d.Recover(2*time.Minute, t0.Add(tt.elapsed))

			assert.Equal(t, tt.recovered, got)
			if !tt.recovered {
				assert.Equal(t, before, d.State)
				return
			}
			assert.Equal(t, StateError, d.State)
			assert.Equal(t, "Processing was interrupted. Please try again.", d.Error)
			require.NotNil(t, d.Image)
			_, err := d.SelectImage(Image{Key: "k5"}, t0.Add(tt.elapsed))
			assert.NoError(t, err)
		})
	}
}

func TestDisposal_SelectImage(t *testing.T) {
	t.Run("replacing returns the previous image", func(t *testing.T) {
		d := New("d-1", "a@b.c", t0)
		_, err := d.SelectImage(Image{Key: "k1"}, t0)
		require.NoError(t, err)

		previous, err := d.SelectImage(Image{Key: "k2"}, t0)

		require.NoError(t, err)
		require.NotNil(t, previous)
		assert.Equal(t, "k1", previous.Key)
		assert.Equal(t, "k2", d.Image.Key)
	})

	t.Run("allowed after settling", func(t *testing.T) {
		d := withModal(t)
		_, _ = d.SelectBin(1, t0)
		d.Fail(errors.New("boom"), t0)
		d.ClearImage(t0)

		_, err := d.SelectImage(Image{Key: "k3"}, t0)

		require.NoError(t, err)
		assert.Equal(t, StateImageSelected, d.State)
	})

	t.Run("refused while the modal is open", func(t *testing.T) {
		d := withModal(t)

		_, err := d.SelectImage(Image{Key: "k4"}, t0)

		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	})
}

func TestDisposal_View(t *testing.T) {
	d := withModal(t)
	_, _ = d.SelectBin(1, t0)
	_, _ = d.Classified("Plastic", t0)
	_ = d.Deposited(4*time.Second, t0)
	_ = d.Rewarded(10, t0)

	v := d.View(t0.Add(time.Second), "https://minio.local/preview")

	assert.Equal(t, "done", v.State)
	assert.Equal(t, "success", v.Outcome)
	assert.True(t, v.HasImage)
	assert.Equal(t, "bottle.jpg", v.ImageName)
	assert.Equal(t, "https://minio.local/preview", v.Preview)
	assert.True(t, v.BinOpen)
	require.NotNil(t, v.SelectedBinID)
	assert.Equal(t, 1, *v.SelectedBinID)

	img := d.ClearImage(t0)
	require.NotNil(t, img)
	assert.False(t, d.View(t0.Add(5*time.Second), "").HasImage)
	assert.False(t, d.View(t0.Add(5*time.Second), "").BinOpen)
}
