package lifecycle

import (
	"time"

	"assettracking/pkg/models"
)

type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyWarning  Urgency = "warning"
	UrgencyCritical Urgency = "critical"
)

const (
	// DefaultLifespanDays is the depreciation horizon of three years.
	DefaultLifespanDays = 3 * 365

	CriticalThresholdDays = 90
	WarningThresholdDays  = 180
)

const day = 24 * time.Hour

type Evaluator struct {
	lifespanDays int
}

// NewEvaluator returns an evaluator for the given horizon. A non-positive
// value falls back to DefaultLifespanDays.
func NewEvaluator(lifespanDays int) *Evaluator {
	if lifespanDays <= 0 {
		lifespanDays = DefaultLifespanDays
	}
	return &Evaluator{lifespanDays: lifespanDays}
}

func (e *Evaluator) LifespanDays() int {
	return e.lifespanDays
}

// RemainingLife returns the fractional number of days left before the asset
// reaches the end of its lifespan at now. Negative values mean it is overdue.
func (e *Evaluator) RemainingLife(asset models.Asset, now time.Time) float64 {
	elapsedDays := float64(now.Sub(asset.PurchaseDate)) / float64(day)
	return float64(e.lifespanDays) - elapsedDays
}

func (e *Evaluator) Evaluate(asset models.Asset, now time.Time) Urgency {
	return Classify(e.RemainingLife(asset, now))
}

func Classify(remainingLife float64) Urgency {
	switch {
	case remainingLife < CriticalThresholdDays:
		return UrgencyCritical
	case remainingLife < WarningThresholdDays:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}
