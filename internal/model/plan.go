// Package model defines domain types for stash plans and the persisted document.
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Mode selects how a plan's daily savings target is derived.
type Mode int

const (
	// ModeEstimate derives the target from the plan's goal and schedule.
	ModeEstimate Mode = iota
	// ModeManual takes the target literally from user input at day start.
	ModeManual
)

// String returns the stable textual form used in storage and CLI output.
func (m Mode) String() string {
	if m == ModeManual {
		return "manual"
	}
	return "estimate"
}

// ParseMode parses the textual form produced by String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "estimate", "":
		return ModeEstimate, nil
	case "manual":
		return ModeManual, nil
	}
	return ModeEstimate, fmt.Errorf("unknown mode %q", s)
}

// DateRange is an inclusive calendar-date range, both ends "YYYY-MM-DD".
type DateRange struct {
	Start string
	End   string
}

// Product is a small catalog item purchasable against the day's allowance.
type Product struct {
	Name  string
	Price float64
}

// PlanSnapshot records a plan's cumulative savings as of a closed day.
type PlanSnapshot struct {
	Date       string
	TotalSaved float64
}

// Plan is a single savings goal with its schedule, accumulators, and
// day-scoped working state.
type Plan struct {
	ID   string
	Name string

	StartDate string
	EndDate   string // empty means indefinite (no fixed end date)
	Goal      float64

	Mode        Mode
	PenaltyMode bool

	Exclusions []DateRange
	Products   []Product

	// Day-scoped fields, meaningful only while DayActive.
	DayActive        bool
	DailyAllowance   float64
	DailySpent       float64
	DailySavingsGoal float64

	TotalSaved  float64
	TotalSpent  float64
	PenaltyDebt float64

	History []PlanSnapshot
}

// NewPlan returns a plan with a fresh ID and zeroed accumulators.
func NewPlan(name, startDate string) *Plan {
	return &Plan{
		ID:        uuid.NewString(),
		Name:      name,
		StartDate: startDate,
	}
}

// Indefinite reports whether the plan has no fixed end date.
func (p *Plan) Indefinite() bool {
	return p.EndDate == ""
}

// Product returns the named catalog item, or nil if absent.
func (p *Plan) Product(name string) *Product {
	for i := range p.Products {
		if p.Products[i].Name == name {
			return &p.Products[i]
		}
	}
	return nil
}

// Remaining returns how much is still needed to reach the goal.
// Negative when the goal has been exceeded.
func (p *Plan) Remaining() float64 {
	return p.Goal - p.TotalSaved
}
