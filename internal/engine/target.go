package engine

import (
	"github.com/theirongolddev/stash/internal/model"
)

// Tuning holds the heuristic constants behind target derivation and
// projection. The defaults mirror long-standing behavior; overrides come
// from the config file.
type Tuning struct {
	// IndefiniteShare is the fraction of the day's allowance targeted
	// when a plan has no fixed end date and is not in manual mode.
	IndefiniteShare float64
	// SurchargeMinAllowance is the allowance at or above which the
	// low-target surcharge can apply.
	SurchargeMinAllowance float64
	// SurchargeBelowTarget is the computed-target threshold below which
	// the surcharge kicks in.
	SurchargeBelowTarget float64
	// SurchargeRate is the fraction of the allowance added as surcharge.
	SurchargeRate float64
	// ProjectionCeilingDays caps the forward walk when estimating a
	// completion date.
	ProjectionCeilingDays int
}

// DefaultTuning returns the stock heuristics.
func DefaultTuning() Tuning {
	return Tuning{
		IndefiniteShare:       0.5,
		SurchargeMinAllowance: 80,
		SurchargeBelowTarget:  50,
		SurchargeRate:         0.2,
		ProjectionCeilingDays: 10000,
	}
}

// DailyTarget returns how much of today's allowance should be set aside
// for the plan. manualTarget is consulted only in manual mode, where the
// user's literal value is taken (floored at zero). Computed targets never
// exceed the allowance and never go negative.
//
// Decision order: exclusion days are off days regardless of mode; plans
// without a fixed end date use the indefinite heuristic; otherwise the
// remaining goal is spread across the qualifying days left before the end
// date, with a surcharge to avoid trivially small targets on generous
// days.
func DailyTarget(p *model.Plan, allowance, manualTarget float64, today string, tun Tuning) float64 {
	if IsExcluded(today, p.Exclusions) {
		return 0
	}

	if p.Mode == model.ModeManual {
		if manualTarget < 0 {
			return 0
		}
		return manualTarget
	}

	if p.Indefinite() {
		return clampTarget(allowance*tun.IndefiniteShare, allowance)
	}

	if p.Goal <= 0 {
		return 0
	}
	if today > p.EndDate {
		// Plan has lapsed.
		return 0
	}

	// Days left excludes today: when today is the last qualifying day
	// (or later), everything available should be saved.
	daysLeft := CountQualifyingDays(NextDay(today), p.EndDate, p.Exclusions)
	if daysLeft <= 0 {
		return clampTarget(allowance, allowance)
	}

	target := p.Remaining() / float64(daysLeft)
	if target < 0 {
		target = 0
	}

	if allowance >= tun.SurchargeMinAllowance && target < tun.SurchargeBelowTarget {
		target += allowance * tun.SurchargeRate
	}

	return clampTarget(target, allowance)
}

func clampTarget(target, allowance float64) float64 {
	if target < 0 {
		return 0
	}
	if target > allowance {
		return allowance
	}
	return target
}
