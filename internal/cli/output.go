package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case SearchResult:
		o.printSearchResult(v)
	case StudentList:
		o.printStudentList(v)
	case StatsResult:
		o.printStatsResult(v)
	case SourceResult:
		o.printSourceResult(v)
	case RepointResult:
		o.printRepointResult(v)
	case SyncResult:
		fmt.Printf("Synced %d records\n", v.Records)
	case UploadResult:
		fmt.Printf("Imported %d records\n", v.Records)
	case InsightsResult:
		o.printInsightsResult(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Student response type (matches API)
type Student struct {
	ID         string `json:"id"`
	RegNo      string `json:"reg_no"`
	Name       string `json:"name"`
	Phone1     string `json:"phone1,omitempty"`
	Phone2     string `json:"phone2,omitempty"`
	Counsellor string `json:"counsellor"`
	Year       string `json:"year,omitempty"`
	Section    string `json:"section,omitempty"`
	Branch     string `json:"branch"`
}

// AuthResult response type
type AuthResult struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at"`
}

// SearchResult response type
type SearchResult struct {
	Query    string    `json:"query"`
	Count    int       `json:"count"`
	Students []Student `json:"students"`
}

// StudentList response type
type StudentList struct {
	Count    int       `json:"count"`
	Students []Student `json:"students"`
}

// Breakdown response type
type Breakdown struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// YearCount response type
type YearCount struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// BranchYears response type
type BranchYears struct {
	Branch string      `json:"branch"`
	Total  int         `json:"total"`
	Years  []YearCount `json:"years"`
}

// StatsSummary response type
type StatsSummary struct {
	Total        int           `json:"total"`
	ByCounsellor []Breakdown   `json:"by_counsellor"`
	BySection    []Breakdown   `json:"by_section"`
	ByBranch     []Breakdown   `json:"by_branch"`
	BranchYears  []BranchYears `json:"branch_years"`
}

// StatsResult response type
type StatsResult struct {
	Summary StatsSummary `json:"summary"`
}

// SourceResult response type
type SourceResult struct {
	SheetURL string `json:"sheet_url,omitempty"`
	State    string `json:"state"`
	LastSync string `json:"last_sync,omitempty"`
	Records  int    `json:"records"`
}

// RepointResult response type
type RepointResult struct {
	SheetURL          string `json:"sheet_url"`
	Records           int    `json:"records"`
	SharedStoreSynced bool   `json:"shared_store_synced"`
}

// SyncResult response type
type SyncResult struct {
	Records int `json:"records"`
}

// UploadResult response type
type UploadResult struct {
	Records int `json:"records"`
}

// InsightsResult response type
type InsightsResult struct {
	Query   string `json:"query"`
	Count   int    `json:"count"`
	Summary string `json:"summary"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Logged in as: %s\n", a.Role)
	fmt.Printf("Expires: %s\n", a.ExpiresAt)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printStudents(students []Student) {
	for _, s := range students {
		fmt.Printf("  %-14s %-24s %s\n", s.RegNo, s.Name, s.Counsellor)
		if s.Phone1 != "" || s.Phone2 != "" {
			fmt.Printf("  %-14s phone: %s", "", s.Phone1)
			if s.Phone2 != "" {
				fmt.Printf(" / %s", s.Phone2)
			}
			fmt.Println()
		}
	}
}

func (o *Output) printSearchResult(r SearchResult) {
	fmt.Printf("Matches for %q: %d\n", r.Query, r.Count)
	o.printStudents(r.Students)
}

func (o *Output) printStudentList(r StudentList) {
	fmt.Printf("Students: %d\n", r.Count)
	o.printStudents(r.Students)
}

func (o *Output) printStatsResult(r StatsResult) {
	fmt.Printf("Total students: %d\n", r.Summary.Total)

	fmt.Println("\nBy counsellor:")
	for _, b := range r.Summary.ByCounsellor {
		fmt.Printf("  %-24s %d\n", b.Label, b.Count)
	}

	fmt.Println("\nBy branch:")
	for _, b := range r.Summary.BranchYears {
		fmt.Printf("  %-24s %d\n", b.Branch, b.Total)
		for _, y := range b.Years {
			fmt.Printf("    year %-6s %d\n", y.Year, y.Count)
		}
	}

	fmt.Println("\nBy section:")
	for _, b := range r.Summary.BySection {
		fmt.Printf("  %-24s %d\n", b.Label, b.Count)
	}
}

func (o *Output) printSourceResult(r SourceResult) {
	if r.SheetURL == "" {
		fmt.Println("Sheet URL: (not set)")
	} else {
		fmt.Printf("Sheet URL: %s\n", r.SheetURL)
	}
	fmt.Printf("State: %s\n", r.State)
	if r.LastSync != "" {
		fmt.Printf("Last sync: %s\n", r.LastSync)
	}
	fmt.Printf("Records: %d\n", r.Records)
}

func (o *Output) printRepointResult(r RepointResult) {
	fmt.Printf("Sheet URL set to: %s\n", r.SheetURL)
	fmt.Printf("Records: %d\n", r.Records)
	if !r.SharedStoreSynced {
		fmt.Println("Warning: shared pointer store was not updated; other deployments will not see the new URL yet")
	}
}

func (o *Output) printInsightsResult(r InsightsResult) {
	fmt.Printf("Matches for %q: %d\n", r.Query, r.Count)
	fmt.Println(r.Summary)
}
