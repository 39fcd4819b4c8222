package engine

import (
	"math"

	"github.com/theirongolddev/stash/internal/model"
)

// Projection is the outcome of a completion-date estimate.
type Projection struct {
	// GoalMet is true when the plan's goal is already reached; Date is
	// empty in that case.
	GoalMet bool
	// Date is the estimated completion date, YYYY-MM-DD.
	Date string
	// Capped is true when the forward walk hit its iteration ceiling and
	// Date is only the point where the walk stopped.
	Capped bool
}

// ProjectCompletion estimates when the plan's goal will be met at the
// current day's savings rate. It applies only when the plan has a goal
// and a positive savings target set for the current day; ok is false
// otherwise.
//
// The walk starts tomorrow and advances one calendar day at a time,
// consuming one needed day per qualifying day, bounded by the tuning
// ceiling. A capped result is a best-effort estimate, not a guarantee.
func ProjectCompletion(p *model.Plan, today string, tun Tuning) (Projection, bool) {
	if p.Goal <= 0 || p.DailySavingsGoal <= 0 {
		return Projection{}, false
	}

	remaining := p.Remaining()
	if remaining <= 0 {
		return Projection{GoalMet: true}, true
	}

	daysNeeded := int(math.Ceil(remaining / p.DailySavingsGoal))

	start, err := ParseDate(today)
	if err != nil {
		return Projection{}, false
	}

	ceiling := tun.ProjectionCeilingDays
	if ceiling <= 0 {
		ceiling = DefaultTuning().ProjectionCeilingDays
	}

	day := start
	found := 0
	for i := 0; i < ceiling; i++ {
		day = day.AddDate(0, 0, 1)
		date := day.Format(DateLayout)
		if QualifiesOn(date, p.Exclusions) {
			found++
			if found >= daysNeeded {
				return Projection{Date: date}, true
			}
		}
	}

	// Ceiling hit: report where the walk stopped rather than looping on.
	return Projection{Date: day.Format(DateLayout), Capped: true}, true
}
