package stats

import (
	"sort"
	"strconv"

	"github.com/edubase/edubase-go/internal/model"
)

// Breakdown is one bucket of a single-dimension count
type Breakdown struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// YearCount is the record count for one year within a branch
type YearCount struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// BranchYears is the per-year breakdown for one branch
type BranchYears struct {
	Branch string      `json:"branch"`
	Total  int         `json:"total"`
	Years  []YearCount `json:"years"`
}

// Summary is the full aggregate view served to the admin dashboard. Every
// single-dimension breakdown sums to Total.
type Summary struct {
	Total        int           `json:"total"`
	ByCounsellor []Breakdown   `json:"by_counsellor"`
	BySection    []Breakdown   `json:"by_section"`
	ByBranch     []Breakdown   `json:"by_branch"`
	BranchYears  []BranchYears `json:"branch_years"`
}

// Service computes roster aggregations for the admin view
type Service struct{}

// New creates a new stats service
func New() *Service {
	return &Service{}
}

// Aggregate groups the roster by counsellor, by year-branch-section key and
// by branch. Counsellor and branch breakdowns are sorted by descending
// count (ties keep first-seen order); the section breakdown is sorted
// lexicographically by key; years within a branch sort ascending
// numerically where parseable.
func (s *Service) Aggregate(students model.Roster) Summary {
	counsellors := newCounter()
	sections := newCounter()
	branches := newCounter()
	branchYears := make(map[string]*counter)

	for _, st := range students {
		counsellors.add(st.CounsellorLabel())
		sections.add(st.SectionKey())

		br := st.BranchLabel()
		branches.add(br)
		years, ok := branchYears[br]
		if !ok {
			years = newCounter()
			branchYears[br] = years
		}
		years.add(st.Year)
	}

	byBranch := counted(branches, byCountDesc)

	perBranch := make([]BranchYears, 0, len(byBranch))
	for _, b := range byBranch {
		years := counted(branchYears[b.Label], byYearAsc)
		yearCounts := make([]YearCount, len(years))
		for i, y := range years {
			yearCounts[i] = YearCount{Year: y.Label, Count: y.Count}
		}
		perBranch = append(perBranch, BranchYears{
			Branch: b.Label,
			Total:  b.Count,
			Years:  yearCounts,
		})
	}

	return Summary{
		Total:        len(students),
		ByCounsellor: counted(counsellors, byCountDesc),
		BySection:    counted(sections, byLabelAsc),
		ByBranch:     byBranch,
		BranchYears:  perBranch,
	}
}

// counter counts occurrences while remembering first-seen order, so
// descending-count sorts have a deterministic tie-break.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, seen := c.counts[label]; !seen {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

type ordering int

const (
	byCountDesc ordering = iota
	byLabelAsc
	byYearAsc
)

func counted(c *counter, by ordering) []Breakdown {
	out := make([]Breakdown, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, Breakdown{Label: label, Count: c.counts[label]})
	}

	switch by {
	case byCountDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Count > out[j].Count
		})
	case byLabelAsc:
		sort.Slice(out, func(i, j int) bool {
			return out[i].Label < out[j].Label
		})
	case byYearAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return yearLess(out[i].Label, out[j].Label)
		})
	}
	return out
}

// yearLess orders parseable years numerically and ahead of unparseable
// ones; unparseable years fall back to lexicographic order.
func yearLess(a, b string) bool {
	na, aok := strconv.Atoi(a)
	nb, bok := strconv.Atoi(b)
	switch {
	case aok == nil && bok == nil:
		return na < nb
	case aok == nil:
		return true
	case bok == nil:
		return false
	default:
		return a < b
	}
}
