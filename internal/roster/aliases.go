package roster

// Aliases maps each student field to the priority-ordered list of header
// names that can populate it. Row keys are expected lower-cased; the first
// alias with a non-empty cell wins, otherwise the field stays empty.
type Aliases struct {
	RegNo      []string
	Name       []string
	Phone1     []string
	Phone2     []string
	Counsellor []string
	Year       []string
	Section    []string
	Branch     []string
}

// UploadAliases is the header vocabulary accepted on local file uploads.
var UploadAliases = Aliases{
	RegNo:      []string{"sid", "reg no", "regno", "registration"},
	Name:       []string{"sname", "name", "student name"},
	Phone1:     []string{"sphno", "phone1", "phone 1", "student phone", "student mobile"},
	Phone2:     []string{"fphno", "phone2", "phone 2", "father phone", "parent phone", "father mobile"},
	Counsellor: []string{"cname", "counante", "counsellor"},
	Year:       []string{"year", "academic year", "yr"},
	Section:    []string{"section", "sec"},
	Branch:     []string{"branch", "dept", "department", "br"},
}

// SheetAliases is the slightly wider vocabulary accepted on remote sheet
// fetches.
var SheetAliases = Aliases{
	RegNo:      []string{"sid", "reg no", "registration", "regno", "rno"},
	Name:       []string{"sname", "name", "student name", "stuname"},
	Phone1:     []string{"sphno", "phone1", "student phone", "phone 1", "student mobile"},
	Phone2:     []string{"fphno", "phone2", "father phone", "parent phone", "phone 2", "father mobile"},
	Counsellor: []string{"cname", "counante", "counsellor", "mentor"},
	Year:       []string{"year", "academic year", "yr"},
	Section:    []string{"section", "sec"},
	Branch:     []string{"branch", "dept", "department", "br"},
}

func getVal(row map[string]string, keys []string) string {
	for _, k := range keys {
		if v := row[k]; v != "" {
			return v
		}
	}
	return ""
}
