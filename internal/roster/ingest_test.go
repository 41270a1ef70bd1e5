package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edubase/edubase-go/internal/model"
)

type IngestSuite struct {
	suite.Suite
}

func TestIngestSuite(t *testing.T) {
	suite.Run(t, new(IngestSuite))
}

func (s *IngestSuite) TestFromCSVBasicUpload() {
	csv := "SID,SNAME,SPHNO,FPHNO,CNAME,YEAR,SECTION,BRANCH\n" +
		"21A51A0501,Ravi Kumar,9876543210,9123456780,Dr. Rao,3,A,CSE\n" +
		"21A51A0502,Sita Devi,9876500000,,Dr. Rao,3,A,CSE\n"

	students, err := FromCSV(strings.NewReader(csv))
	s.Require().NoError(err)
	s.Require().Len(students, 2)

	s.Equal("21A51A0501", students[0].RegNo)
	s.Equal("Ravi Kumar", students[0].Name)
	s.Equal("9876543210", students[0].Phone1)
	s.Equal("9123456780", students[0].Phone2)
	s.Equal("Dr. Rao", students[0].Counsellor)
	s.Equal("3", students[0].Year)
	s.Equal("A", students[0].Section)
	s.Equal("CSE", students[0].Branch)

	s.Equal("Sita Devi", students[1].Name)
	s.Empty(students[1].Phone2)
}

func (s *IngestSuite) TestFromCSVHeaderAliasesAreEquivalent() {
	a := "SID,SNAME,CNAME\nX1,Alice,Dr. Rao\n"
	b := "Reg No,Student Name,Counsellor\nX1,Alice,Dr. Rao\n"

	fromA, err := FromCSV(strings.NewReader(a))
	s.Require().NoError(err)
	fromB, err := FromCSV(strings.NewReader(b))
	s.Require().NoError(err)

	s.Equal(fromA, fromB)
}

func (s *IngestSuite) TestFromCSVHeadersCaseInsensitive() {
	csv := "sid,sname\nX1,Alice\n"

	students, err := FromCSV(strings.NewReader(csv))
	s.Require().NoError(err)
	s.Require().Len(students, 1)
	s.Equal("X1", students[0].RegNo)
	s.Equal("Alice", students[0].Name)
}

func (s *IngestSuite) TestFromCSVKeepsEmptyRows() {
	csv := "SID,SNAME\nX1,Alice\n,\nX3,Carol\n"

	students, err := FromCSV(strings.NewReader(csv))
	s.Require().NoError(err)
	s.Require().Len(students, 3)
	s.Empty(students[1].RegNo)
	s.Empty(students[1].Name)
	s.Equal("Carol", students[2].Name)
}

func (s *IngestSuite) TestFromCSVPreservesRowOrder() {
	csv := "SID,SNAME\nZ9,Zed\nA1,Ann\nM5,Mia\n"

	students, err := FromCSV(strings.NewReader(csv))
	s.Require().NoError(err)
	s.Require().Len(students, 3)
	s.Equal("Zed", students[0].Name)
	s.Equal("Ann", students[1].Name)
	s.Equal("Mia", students[2].Name)
}

func (s *IngestSuite) TestFromCSVHeaderOnlyYieldsEmptyRoster() {
	students, err := FromCSV(strings.NewReader("SID,SNAME\n"))
	s.Require().NoError(err)
	s.Empty(students)
}

func (s *IngestSuite) TestFromCSVEmptyInputYieldsEmptyRoster() {
	students, err := FromCSV(strings.NewReader(""))
	s.Require().NoError(err)
	s.Empty(students)
}

func (s *IngestSuite) TestFromCSVMalformedFailsAsWhole() {
	// Unterminated quoted field mid-file
	csv := "SID,SNAME\nX1,\"Alice\nX2,Bob"

	_, err := FromCSV(strings.NewReader(csv))
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrMalformedTable)
}

func (s *IngestSuite) TestRecordIDStableAcrossReingest() {
	csv := "SID,SNAME,CNAME\nX1,Alice,Dr. Rao\nX2,Bob,Dr. Rao\n"

	first, err := FromCSV(strings.NewReader(csv))
	s.Require().NoError(err)
	second, err := FromCSV(strings.NewReader(csv))
	s.Require().NoError(err)

	s.Require().Len(first, 2)
	s.Equal(first[0].ID, second[0].ID)
	s.Equal(first[1].ID, second[1].ID)
}

func (s *IngestSuite) TestRecordIDUniqueForDuplicateRows() {
	csv := "SID,SNAME\nX1,Alice\nX1,Alice\n"

	students, err := FromCSV(strings.NewReader(csv))
	s.Require().NoError(err)
	s.Require().Len(students, 2)
	s.NotEqual(students[0].ID, students[1].ID)
}

func (s *IngestSuite) TestRecordIDChangesWithContent() {
	a := RecordID(0, model.Student{RegNo: "X1", Name: "Alice"})
	b := RecordID(0, model.Student{RegNo: "X1", Name: "Alicia"})
	s.NotEqual(a, b)
}

func (s *IngestSuite) TestAliasPriorityFirstNonEmptyWins() {
	rows := []map[string]string{
		{"sid": "X1", "reg no": "ignored", "sname": "Alice"},
		{"reg no": "X2", "sname": "Bob"},
	}

	students := UploadAliases.Records(rows)
	s.Require().Len(students, 2)
	s.Equal("X1", students[0].RegNo)
	s.Equal("X2", students[1].RegNo)
}
