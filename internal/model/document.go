package model

// HistoryCap bounds every history sequence; the oldest entry is evicted
// once the cap is exceeded.
const HistoryCap = 30

// SavingsSnapshot records the document-wide savings total as of a closed day.
type SavingsSnapshot struct {
	Date    string
	Savings float64
}

// Document is the whole persisted state, one per user. It is loaded once
// per operation and saved back as a whole after every mutation.
type Document struct {
	Plans         []*Plan
	TotalSavings  float64
	History       []SavingsSnapshot
	LastLoginDate string
	TosAgreed     bool
}

// Plan returns the plan with the given ID, or nil.
func (d *Document) Plan(id string) *Plan {
	for _, p := range d.Plans {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindPlan resolves a plan by exact ID, exact name, or unique ID prefix,
// in that order. Returns nil if nothing matches unambiguously.
func (d *Document) FindPlan(ref string) *Plan {
	if p := d.Plan(ref); p != nil {
		return p
	}
	for _, p := range d.Plans {
		if p.Name == ref {
			return p
		}
	}
	var match *Plan
	for _, p := range d.Plans {
		if len(ref) >= 4 && len(p.ID) >= len(ref) && p.ID[:len(ref)] == ref {
			if match != nil {
				return nil
			}
			match = p
		}
	}
	return match
}

// RemovePlan deletes the plan with the given ID. Reports whether a plan
// was removed. No further bookkeeping happens on deletion.
func (d *Document) RemovePlan(id string) bool {
	for i, p := range d.Plans {
		if p.ID == id {
			d.Plans = append(d.Plans[:i], d.Plans[i+1:]...)
			return true
		}
	}
	return false
}

// AppendBounded appends e and evicts from the front beyond limit entries.
func AppendBounded[T any](s []T, e T, limit int) []T {
	s = append(s, e)
	if len(s) > limit {
		s = s[len(s)-limit:]
	}
	return s
}
