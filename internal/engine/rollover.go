package engine

import (
	"github.com/theirongolddev/stash/internal/model"
)

// Rollover closes the previous day's ledger for every active plan when
// the stored last-seen date differs from today. Reports whether the
// document changed.
//
// Per day this is idempotent: a second call on the same calendar day is a
// no-op. Across multi-day gaps exactly one day's accounting is applied;
// skipped days are not back-filled.
func Rollover(doc *model.Document, today string) bool {
	if doc.LastLoginDate == today {
		return false
	}

	closedDate := doc.LastLoginDate
	if closedDate == "" {
		// First observation ever: nothing to close, just mark the day.
		doc.LastLoginDate = today
		return true
	}

	for _, p := range doc.Plans {
		if !p.DayActive {
			continue
		}
		closePlanDay(doc, p, closedDate)
	}

	doc.History = model.AppendBounded(doc.History, model.SavingsSnapshot{
		Date:    closedDate,
		Savings: doc.TotalSavings,
	}, model.HistoryCap)
	doc.LastLoginDate = today
	return true
}

// closePlanDay applies one day's accounting to a plan and resets its
// day-scoped fields.
func closePlanDay(doc *model.Document, p *model.Plan, date string) {
	actual := p.DailyAllowance - p.DailySpent // may be negative

	if p.PenaltyMode && actual < p.DailySavingsGoal {
		p.PenaltyDebt += p.DailySavingsGoal - actual
	}

	p.TotalSaved += actual
	p.TotalSpent += p.DailySpent
	doc.TotalSavings += actual

	p.History = model.AppendBounded(p.History, model.PlanSnapshot{
		Date:       date,
		TotalSaved: p.TotalSaved,
	}, model.HistoryCap)

	p.DayActive = false
	p.DailyAllowance = 0
	p.DailySpent = 0
	p.DailySavingsGoal = 0
}
