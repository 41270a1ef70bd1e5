package roster

import (
	"encoding/csv"
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"github.com/edubase/edubase-go/internal/model"
)

// Records maps header→cell rows to students, one record per row in input
// order. Rows are never dropped here, even when entirely empty.
func (a Aliases) Records(rows []map[string]string) model.Roster {
	students := make(model.Roster, 0, len(rows))
	for i, row := range rows {
		s := model.Student{
			RegNo:      getVal(row, a.RegNo),
			Name:       getVal(row, a.Name),
			Phone1:     getVal(row, a.Phone1),
			Phone2:     getVal(row, a.Phone2),
			Counsellor: getVal(row, a.Counsellor),
			Year:       getVal(row, a.Year),
			Section:    getVal(row, a.Section),
			Branch:     getVal(row, a.Branch),
		}
		s.ID = RecordID(i, s)
		students = append(students, s)
	}
	return students
}

// FromCSV parses an uploaded CSV file into a roster using the upload header
// vocabulary. A file that cannot be parsed fails as a whole; no partial
// roster is returned.
func FromCSV(r io.Reader) (model.Roster, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedTable, err)
	}
	if len(records) < 2 {
		return model.Roster{}, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	return UploadAliases.Records(rows), nil
}

// RecordID derives a record identifier from the natural fields plus the row
// index. Re-ingesting identical input yields identical IDs, and the index
// component keeps IDs unique within a batch even for duplicate rows.
func RecordID(index int, s model.Student) string {
	h := fnv.New64a()
	for _, f := range []string{s.RegNo, s.Name, s.Phone1, s.Phone2, s.Counsellor, s.Year, s.Section, s.Branch} {
		_, _ = h.Write([]byte(f))
		_, _ = h.Write([]byte{0x1f})
	}
	return fmt.Sprintf("st-%d-%016x", index, h.Sum64())
}
