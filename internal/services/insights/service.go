package insights

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/edubase/edubase-go/internal/model"
)

// FallbackMessage is returned whenever the model call fails. Insights are
// best-effort and never fail the request they decorate.
const FallbackMessage = "Insights are unavailable right now. Please try again later."

// maxRecords bounds how many records are summarized into the prompt
const maxRecords = 50

// Config holds insights settings
type Config struct {
	// APIKey enables the service; when empty every query answers with the
	// fallback message.
	APIKey string
	Model  string
}

// DefaultConfig returns default insights configuration
func DefaultConfig() Config {
	return Config{
		Model: "gemini-2.5-flash",
	}
}

// Service asks a text-generation model for a short natural-language note
// about a set of matched records. Treated as an opaque collaborator:
// string in, string out, may fail silently to the fallback message.
type Service struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// New creates a new insights service. A missing API key yields a disabled
// service rather than an error.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Service, error) {
	svc := &Service{
		model:  cfg.Model,
		logger: logger.With(slog.String("component", "insights")),
	}
	if svc.model == "" {
		svc.model = DefaultConfig().Model
	}
	if cfg.APIKey == "" {
		return svc, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	svc.client = client
	return svc, nil
}

// Enabled reports whether a model client is configured
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Summarize returns a short note about the records in the context of the
// query, or the fallback message on any failure.
func (s *Service) Summarize(ctx context.Context, students model.Roster, query string) string {
	if s.client == nil {
		return FallbackMessage
	}
	if len(students) > maxRecords {
		students = students[:maxRecords]
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(buildPrompt(students, query)), nil)
	if err != nil {
		s.logger.Warn("insights generation failed", slog.Any("error", err))
		return FallbackMessage
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return FallbackMessage
	}
	return text
}

func buildPrompt(students model.Roster, query string) string {
	var b strings.Builder
	b.WriteString("You are assisting staff browsing a student directory. ")
	b.WriteString("Answer the question below in two or three sentences using only the records provided.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\nRecords:\n", query)
	for _, st := range students {
		fmt.Fprintf(&b, "- %s (%s) year=%s branch=%s section=%s counsellor=%s\n",
			st.Name, st.RegNo, st.Year, st.Branch, st.Section, st.Counsellor)
	}
	return b.String()
}
