package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/theirongolddev/stash/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "stash.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadFreshDatabaseDefaults(t *testing.T) {
	s := openTestStore(t)

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.TotalSavings != 0 || doc.LastLoginDate != "" || doc.TosAgreed {
		t.Fatalf("fresh document not defaulted: %+v", doc)
	}
	if len(doc.Plans) != 0 || len(doc.History) != 0 {
		t.Fatalf("fresh document has data: %+v", doc)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	p := model.NewPlan("vacation", "2024-01-01")
	p.EndDate = "2024-06-28"
	p.Goal = 5000
	p.Mode = model.ModeManual
	p.PenaltyMode = true
	p.Exclusions = []model.DateRange{{Start: "2024-02-01", End: "2024-02-07"}}
	p.Products = []model.Product{{Name: "coffee", Price: 4.5}}
	p.DayActive = true
	p.DailyAllowance = 100
	p.DailySpent = 12.5
	p.DailySavingsGoal = 40
	p.TotalSaved = 320
	p.TotalSpent = 81
	p.PenaltyDebt = 15
	p.History = []model.PlanSnapshot{{Date: "2024-01-02", TotalSaved: 320}}

	doc := &model.Document{
		Plans:         []*model.Plan{p, model.NewPlan("bike", "2024-03-01")},
		TotalSavings:  320,
		History:       []model.SavingsSnapshot{{Date: "2024-01-02", Savings: 320}},
		LastLoginDate: "2024-01-03",
		TosAgreed:     true,
	}

	if err := s.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, doc)
	}
}

func TestSaveReplacesPreviousState(t *testing.T) {
	s := openTestStore(t)

	first := &model.Document{
		Plans:         []*model.Plan{model.NewPlan("old", "2024-01-01")},
		LastLoginDate: "2024-01-01",
	}
	if err := s.Save(first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := &model.Document{
		Plans:         []*model.Plan{model.NewPlan("new", "2024-02-01")},
		TotalSavings:  50,
		LastLoginDate: "2024-02-01",
	}
	if err := s.Save(second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Plans) != 1 || got.Plans[0].Name != "new" {
		t.Fatalf("plans after replace = %+v, want only 'new'", got.Plans)
	}
	if got.TotalSavings != 50 {
		t.Fatalf("TotalSavings = %.2f, want 50", got.TotalSavings)
	}
}

func TestPlanOrderPreserved(t *testing.T) {
	s := openTestStore(t)

	doc := &model.Document{LastLoginDate: "2024-01-01"}
	for _, name := range []string{"c", "a", "b"} {
		doc.Plans = append(doc.Plans, model.NewPlan(name, "2024-01-01"))
	}
	if err := s.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for i, want := range []string{"c", "a", "b"} {
		if got.Plans[i].Name != want {
			t.Fatalf("plan %d = %s, want %s", i, got.Plans[i].Name, want)
		}
	}
}
