package engine

import (
	"math"
	"testing"

	"github.com/theirongolddev/stash/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func fixedPlan(goal, saved float64, end string) *model.Plan {
	return &model.Plan{
		ID:         "p1",
		Name:       "test",
		StartDate:  "2024-01-01",
		EndDate:    end,
		Goal:       goal,
		TotalSaved: saved,
	}
}

func TestDailyTargetFormula(t *testing.T) {
	// 2024-01-02 through 2024-01-11 holds exactly 8 business days after
	// Monday 2024-01-01, so remaining 800 spreads to 100/day.
	p := fixedPlan(1000, 200, "2024-01-11")
	got := DailyTarget(p, 100, 0, "2024-01-01", DefaultTuning())
	if !almostEqual(got, 100) {
		t.Fatalf("target = %.2f, want 100", got)
	}
}

func TestDailyTargetSurcharge(t *testing.T) {
	// 10 business days left, raw target 100/10 = 10 < 50 with a generous
	// allowance adds 20% of 90.
	p := fixedPlan(10000, 9900, "2024-01-15")
	got := DailyTarget(p, 90, 0, "2024-01-01", DefaultTuning())
	if !almostEqual(got, 28) {
		t.Fatalf("target = %.2f, want 28 (10 + 18 surcharge)", got)
	}
}

func TestDailyTargetNoSurchargeBelowAllowanceFloor(t *testing.T) {
	p := fixedPlan(10000, 9900, "2024-01-15")
	got := DailyTarget(p, 79, 0, "2024-01-01", DefaultTuning())
	if !almostEqual(got, 10) {
		t.Fatalf("target = %.2f, want 10 (no surcharge under min allowance)", got)
	}
}

func TestDailyTargetLastDay(t *testing.T) {
	// Friday 2024-01-05 is the plan's last qualifying day: save everything.
	p := fixedPlan(1000, 0, "2024-01-05")
	got := DailyTarget(p, 60, 0, "2024-01-05", DefaultTuning())
	if !almostEqual(got, 60) {
		t.Fatalf("target = %.2f, want full allowance 60", got)
	}
}

func TestDailyTargetLapsedPlan(t *testing.T) {
	p := fixedPlan(1000, 0, "2024-01-05")
	if got := DailyTarget(p, 100, 0, "2024-01-08", DefaultTuning()); got != 0 {
		t.Fatalf("target after end date = %.2f, want 0", got)
	}
}

func TestDailyTargetNoGoal(t *testing.T) {
	p := fixedPlan(0, 0, "2024-06-28")
	if got := DailyTarget(p, 100, 0, "2024-01-01", DefaultTuning()); got != 0 {
		t.Fatalf("target with zero goal = %.2f, want 0", got)
	}
}

func TestDailyTargetCappedAtAllowance(t *testing.T) {
	// One qualifying day left but 900 still needed.
	p := fixedPlan(1000, 100, "2024-01-02")
	got := DailyTarget(p, 50, 0, "2024-01-01", DefaultTuning())
	if !almostEqual(got, 50) {
		t.Fatalf("target = %.2f, want capped allowance 50", got)
	}
}

func TestDailyTargetExclusionWins(t *testing.T) {
	excl := []model.DateRange{{Start: "2024-01-01", End: "2024-01-02"}}

	auto := fixedPlan(1000, 0, "2024-01-31")
	auto.Exclusions = excl
	if got := DailyTarget(auto, 100, 0, "2024-01-01", DefaultTuning()); got != 0 {
		t.Fatalf("excluded day target (estimate) = %.2f, want 0", got)
	}

	manual := fixedPlan(1000, 0, "")
	manual.Mode = model.ModeManual
	manual.Exclusions = excl
	if got := DailyTarget(manual, 100, 40, "2024-01-01", DefaultTuning()); got != 0 {
		t.Fatalf("excluded day target (manual) = %.2f, want 0", got)
	}
}

func TestDailyTargetIndefinite(t *testing.T) {
	p := fixedPlan(1000, 0, "")
	got := DailyTarget(p, 100, 0, "2024-01-01", DefaultTuning())
	if !almostEqual(got, 50) {
		t.Fatalf("indefinite target = %.2f, want 50%% of allowance", got)
	}
}

func TestDailyTargetManualLiteral(t *testing.T) {
	p := fixedPlan(1000, 0, "")
	p.Mode = model.ModeManual

	if got := DailyTarget(p, 100, 37.5, "2024-01-01", DefaultTuning()); !almostEqual(got, 37.5) {
		t.Fatalf("manual target = %.2f, want 37.5", got)
	}
	if got := DailyTarget(p, 100, -5, "2024-01-01", DefaultTuning()); got != 0 {
		t.Fatalf("negative manual target = %.2f, want 0", got)
	}
}

func TestDailyTargetTuningOverrides(t *testing.T) {
	tun := DefaultTuning()
	tun.IndefiniteShare = 0.25

	p := fixedPlan(1000, 0, "")
	got := DailyTarget(p, 100, 0, "2024-01-01", tun)
	if !almostEqual(got, 25) {
		t.Fatalf("tuned indefinite target = %.2f, want 25", got)
	}
}
