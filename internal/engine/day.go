package engine

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/stash/internal/model"
)

var (
	// ErrInvalidInput marks a rejected operation; the document is left
	// untouched.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDayNotStarted is returned by spend operations before StartDay.
	ErrDayNotStarted = errors.New("day not started")
)

// StartDay opens (or restarts) the plan's day with the given allowance.
// In manual mode the savings target is taken literally from manualTarget;
// otherwise it is derived by DailyTarget. A negative allowance is
// rejected without mutation.
func StartDay(p *model.Plan, allowance, manualTarget float64, today string, tun Tuning) error {
	if allowance < 0 {
		return fmt.Errorf("%w: allowance must be >= 0, got %.2f", ErrInvalidInput, allowance)
	}

	p.DayActive = true
	p.DailyAllowance = allowance
	p.DailySpent = 0
	p.DailySavingsGoal = DailyTarget(p, allowance, manualTarget, today, tun)
	return nil
}

// Spend records an amount spent against the day's allowance.
func Spend(p *model.Plan, amount float64) error {
	if !p.DayActive {
		return ErrDayNotStarted
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount must be >= 0, got %.2f", ErrInvalidInput, amount)
	}
	p.DailySpent += amount
	return nil
}

// Buy purchases the named catalog product against the day's allowance.
func Buy(p *model.Plan, name string) error {
	if !p.DayActive {
		return ErrDayNotStarted
	}
	prod := p.Product(name)
	if prod == nil {
		return fmt.Errorf("%w: no product named %q", ErrInvalidInput, name)
	}
	p.DailySpent += prod.Price
	return nil
}

// AddExclusion inserts an inclusive date range and re-merges the plan's
// exclusion set.
func AddExclusion(p *model.Plan, start, end string) error {
	if _, err := ParseDate(start); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := ParseDate(end); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if start > end {
		return fmt.Errorf("%w: exclusion start %s after end %s", ErrInvalidInput, start, end)
	}
	p.Exclusions = MergeExclusions(append(p.Exclusions, model.DateRange{Start: start, End: end}))
	return nil
}

// RemoveExclusion deletes the merged range at index and re-merges.
func RemoveExclusion(p *model.Plan, index int) error {
	if index < 0 || index >= len(p.Exclusions) {
		return fmt.Errorf("%w: exclusion index %d out of range", ErrInvalidInput, index)
	}
	p.Exclusions = MergeExclusions(append(p.Exclusions[:index], p.Exclusions[index+1:]...))
	return nil
}
