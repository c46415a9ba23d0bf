package analytics

import (
	"testing"
	"time"
	_ "time/tzdata"

	"ecobin-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityAndPointsSeries(t *testing.T) {
	bins := []models.Bin{
		{BinCode: "b-1", Capacity: 2000, CurrentWeight: 500},
		{BinCode: "lib2", Capacity: 0, CurrentWeight: 10},
		{BinCode: "c3", Capacity: 3, CurrentWeight: 2},
	}

	capacity := CapacitySeries(bins)
	points := PointsSeries(bins)

	assert.Equal(t, "Capacity (%)", capacity.Label)
	assert.Equal(t, []string{"Bin B-1", "Bin LIB2", "Bin C3"}, capacity.Labels)
	assert.Equal(t, []float64{25, 0, 67}, capacity.Data)

	assert.Equal(t, "Points per Bin", points.Label)
	assert.Equal(t, capacity.Labels, points.Labels)
	assert.Equal(t, []float64{250, 0, 670}, points.Data)
}

func TestSeries_NoBins(t *testing.T) {
	capacity := CapacitySeries(nil)

	assert.Empty(t, capacity.Labels)
	assert.Empty(t, capacity.Data)
}

func deposit(at time.Time, weight float64) models.Deposit {
	return models.Deposit{RequestDate: models.NewTimestamp(at), Weight: weight}
}

func TestHourlyWeights(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 20, 0, 0, time.UTC)

	t.Run("seven zero-filled buckets without deposits", func(t *testing.T) {
		series := HourlyWeights(nil, now, time.UTC)

		assert.Equal(t, "Weight (kg) per hour", series.Label)
		assert.Equal(t, []string{
			"2025-03-14 06:00", "2025-03-14 07:00", "2025-03-14 08:00", "2025-03-14 09:00",
			"2025-03-14 10:00", "2025-03-14 11:00", "2025-03-14 12:00",
		}, series.Labels)
		assert.Equal(t, []float64{0, 0, 0, 0, 0, 0, 0}, series.Data)
	})

	t.Run("buckets deposits by hour", func(t *testing.T) {
		deposits := []models.Deposit{
			deposit(now.Add(-90*time.Minute), 5),
			deposit(now.Add(-5*time.Hour), 3),
		}

		series := HourlyWeights(deposits, now, time.UTC)

		require.Len(t, series.Labels, 7)
		total := 0.0
		for _, v := range series.Data {
			total += v
		}
		assert.Equal(t, 8.0, total)
		assert.Equal(t, 5.0, series.Data[4], "T-1h30m falls into 10:00")
		assert.Equal(t, 3.0, series.Data[1], "T-5h falls into 07:00")
	})

	t.Run("ignores deposits outside the window", func(t *testing.T) {
		deposits := []models.Deposit{
			deposit(now.Add(-6*time.Hour-time.Second), 100),
			deposit(now.Add(time.Minute), 100),
			deposit(now.Add(-6*time.Hour), 2),
			deposit(now, 1),
			{Weight: 50},
		}

		series := HourlyWeights(deposits, now, time.UTC)

		assert.Equal(t, []float64{2, 0, 0, 0, 0, 0, 1}, series.Data)
	})

	t.Run("sums deposits sharing an hour", func(t *testing.T) {
		deposits := []models.Deposit{
			deposit(time.Date(2025, 3, 14, 11, 1, 0, 0, time.UTC), 100),
			deposit(time.Date(2025, 3, 14, 11, 59, 0, 0, time.UTC), 100),
		}

		series := HourlyWeights(deposits, now, time.UTC)

		assert.Equal(t, 200.0, series.Data[5])
	})

	t.Run("labels in the configured timezone", func(t *testing.T) {
		loc := time.FixedZone("SAST", 2*60*60)
		deposits := []models.Deposit{deposit(time.Date(2025, 3, 14, 11, 30, 0, 0, time.UTC), 7)}

		series := HourlyWeights(deposits, now, loc)

		assert.Equal(t, "2025-03-14 08:00", series.Labels[0])
		assert.Equal(t, "2025-03-14 14:00", series.Labels[6])
		assert.Equal(t, 7.0, series.Data[5], "11:30 UTC is 13:30 SAST")
	})

	t.Run("repeated hour at daylight saving fall-back", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		// 03:30 EST on the day clocks go back from 02:00 EDT to 01:00 EST.
		fallBack := time.Date(2025, 11, 2, 8, 30, 0, 0, time.UTC)
		firstOneThirty := time.Date(2025, 11, 2, 5, 30, 0, 0, time.UTC) // 01:30 EDT
		deposits := []models.Deposit{deposit(firstOneThirty, 5)}

		series := HourlyWeights(deposits, fallBack, loc)

		assert.Equal(t, []string{
			"2025-11-01 22:00", "2025-11-01 23:00", "2025-11-02 00:00", "2025-11-02 01:00",
			"2025-11-02 01:00", "2025-11-02 02:00", "2025-11-02 03:00",
		}, series.Labels)
		assert.Equal(t, []float64{0, 0, 0, 5, 0, 0, 0}, series.Data)
	})

	t.Run("exactly on the hour", func(t *testing.T) {
		onHour := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

		series := HourlyWeights(nil, onHour, time.UTC)

		assert.Len(t, series.Labels, 7)
		assert.Equal(t, "2025-03-14 06:00", series.Labels[0])
	})
}
