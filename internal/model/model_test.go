package model

import "testing"

func TestAppendBounded(t *testing.T) {
	var s []int
	for i := 1; i <= 35; i++ {
		s = AppendBounded(s, i, 30)
	}
	if len(s) != 30 {
		t.Fatalf("len = %d, want 30", len(s))
	}
	if s[0] != 6 || s[29] != 35 {
		t.Fatalf("retained [%d..%d], want [6..35]", s[0], s[29])
	}
}

func TestParseModeRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeEstimate, ModeManual} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMode(%s) = %v, %v", m, got, err)
		}
	}
	if _, err := ParseMode("bogus"); err == nil {
		t.Fatal("ParseMode accepted bogus mode")
	}
	if m, err := ParseMode(""); err != nil || m != ModeEstimate {
		t.Fatalf("empty mode = %v, %v, want estimate default", m, err)
	}
}

func TestFindPlan(t *testing.T) {
	a := NewPlan("groceries", "2024-01-01")
	b := NewPlan("bike", "2024-01-01")
	doc := &Document{Plans: []*Plan{a, b}}

	if got := doc.FindPlan(a.ID); got != a {
		t.Fatal("lookup by full ID failed")
	}
	if got := doc.FindPlan("bike"); got != b {
		t.Fatal("lookup by name failed")
	}
	if got := doc.FindPlan(a.ID[:8]); got != a {
		t.Fatal("lookup by ID prefix failed")
	}
	if got := doc.FindPlan("nothing"); got != nil {
		t.Fatalf("lookup of unknown ref = %v, want nil", got)
	}
}

func TestRemovePlan(t *testing.T) {
	a := NewPlan("a", "2024-01-01")
	b := NewPlan("b", "2024-01-01")
	doc := &Document{Plans: []*Plan{a, b}}

	if !doc.RemovePlan(a.ID) {
		t.Fatal("RemovePlan reported nothing removed")
	}
	if len(doc.Plans) != 1 || doc.Plans[0] != b {
		t.Fatalf("plans after remove = %v", doc.Plans)
	}
	if doc.RemovePlan("missing") {
		t.Fatal("RemovePlan removed a missing plan")
	}
}
