package insights

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edubase/edubase-go/internal/model"
	"github.com/edubase/edubase-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	ctx context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestMissingAPIKeyDisablesService() {
	svc, err := New(s.ctx, Config{}, testutil.NopLogger())
	s.Require().NoError(err)
	s.False(svc.Enabled())
}

func (s *ServiceSuite) TestDisabledServiceAnswersWithFallback() {
	svc, err := New(s.ctx, Config{}, testutil.NopLogger())
	s.Require().NoError(err)

	roster := model.Roster{{Name: "Alice", RegNo: "X1"}}
	s.Equal(FallbackMessage, svc.Summarize(s.ctx, roster, "who is in section A?"))
}

func (s *ServiceSuite) TestDefaultModelApplied() {
	svc, err := New(s.ctx, Config{}, testutil.NopLogger())
	s.Require().NoError(err)
	s.Equal(DefaultConfig().Model, svc.model)
}

func (s *ServiceSuite) TestBuildPromptIncludesQueryAndRecords() {
	roster := model.Roster{
		{Name: "Alice", RegNo: "X1", Year: "3", Branch: "CSE", Section: "A", Counsellor: "Dr. Rao"},
		{Name: "Bob", RegNo: "X2"},
	}

	prompt := buildPrompt(roster, "who needs follow-up?")
	s.Contains(prompt, "who needs follow-up?")
	s.Contains(prompt, "Alice (X1)")
	s.Contains(prompt, "Bob (X2)")
	s.Contains(prompt, "counsellor=Dr. Rao")
}

func (s *ServiceSuite) TestBuildPromptOneLinePerRecord() {
	roster := make(model.Roster, maxRecords)
	for i := range roster {
		roster[i] = model.Student{Name: "Student", RegNo: "X"}
	}

	prompt := buildPrompt(roster, "query")
	s.Equal(maxRecords, strings.Count(prompt, "- Student"))
}
