// Package analytics derives the admin dashboard chart series from backend
// bins and deposits.
package analytics

import (
	"strings"
	"time"

	"ecobin-portal/internal/models"
)

// Chart series labels.
const (
	CapacityLabel = "Capacity (%)"
	PointsLabel   = "Points per Bin"
	HourlyLabel   = "Weight (kg) per hour"
)

// HourLayout formats hourly bucket labels.
const HourLayout = "2006-01-02 15:00"

// Window is the span of the hourly chart.
const Window = 6 * time.Hour

// BinLabel is the chart label of a bin.
func BinLabel(b models.Bin) string {
	return "Bin " + strings.ToUpper(b.BinCode)
}

func binLabels(bins []models.Bin) []string {
	labels := make([]string, len(bins))
	for i, b := range bins {
		labels[i] = BinLabel(b)
	}
	return labels
}

// CapacitySeries charts each bin's fill percentage.
func CapacitySeries(bins []models.Bin) models.ChartSeries {
	data := make([]float64, len(bins))
	for i, b := range bins {
		data[i] = float64(b.FillPercentage())
	}
	return models.ChartSeries{Label: CapacityLabel, Labels: binLabels(bins), Data: data}
}

// PointsSeries charts each bin's fill percentage times ten.
func PointsSeries(bins []models.Bin) models.ChartSeries {
	data := make([]float64, len(bins))
	for i, b := range bins {
		data[i] = float64(b.FillPercentage() * 10)
	}
	return models.ChartSeries{Label: PointsLabel, Labels: binLabels(bins), Data: data}
}

// HourlyWeights sums deposit weights per hour over the window ending at now.
// There is one bucket per hour from floor(now-6h) to floor(now) inclusive,
// labelled in loc. Deposits outside [now-6h, now] are ignored. Buckets are
// keyed by their absolute start, so the repeated hour of a daylight saving
// fall-back gets two buckets sharing a label.
func HourlyWeights(deposits []models.Deposit, now time.Time, loc *time.Location) models.ChartSeries {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	start := now.Add(-Window)

	sums := make(map[int64]float64)
	for _, d := range deposits {
		at := d.RequestDate.Time
		if at.IsZero() || at.Before(start) || at.After(now) {
			continue
		}
		sums[floorHour(at.In(loc)).Unix()] += d.Weight
	}

	var (
		labels []string
		data   []float64
	)
	last := floorHour(now)
	for cur := floorHour(start); !cur.After(last); cur = cur.Add(time.Hour) {
		labels = append(labels, cur.Format(HourLayout))
		data = append(data, sums[cur.Unix()])
	}
	return models.ChartSeries{Label: HourlyLabel, Labels: labels, Data: data}
}

// floorHour truncates t to the start of its hour in t's location. It steps
// back from t instead of calling time.Date, which resolves an ambiguous wall
// clock hour to the first offset.
func floorHour(t time.Time) time.Time {
	into := time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond())
	return t.Add(-into)
}
