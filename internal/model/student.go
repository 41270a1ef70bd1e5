package model

// Labels used when a classification field is absent
const (
	UnassignedLabel    = "Unassigned"
	UnknownBranchLabel = "Unknown"
)

// Student is one normalized roster entry. All fields come verbatim from the
// source sheet; the empty string is the canonical "absent" value.
type Student struct {
	ID         string `json:"id"`
	RegNo      string `json:"reg_no"`
	Name       string `json:"name"`
	Phone1     string `json:"phone1"`
	Phone2     string `json:"phone2"`
	Counsellor string `json:"counsellor"`
	Year       string `json:"year"`
	Section    string `json:"section"`
	Branch     string `json:"branch"`
}

// SectionKey returns the composite year-branch-section key used by the
// section breakdown and the admin drill-down.
func (s Student) SectionKey() string {
	return s.Year + "-" + s.Branch + "-" + s.Section
}

// CounsellorLabel returns the counsellor name, or the Unassigned label when
// no counsellor is set.
func (s Student) CounsellorLabel() string {
	if s.Counsellor == "" {
		return UnassignedLabel
	}
	return s.Counsellor
}

// BranchLabel returns the branch name, or the Unknown label when no branch
// is set.
func (s Student) BranchLabel() string {
	if s.Branch == "" {
		return UnknownBranchLabel
	}
	return s.Branch
}

// Roster is a full record list. A roster is created atomically by one
// adapter call and replaces the previous list wholesale; records are never
// mutated in place. Record IDs are unique within one roster's lifetime.
type Roster []Student
