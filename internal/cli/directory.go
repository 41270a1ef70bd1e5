package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the student directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SearchResult

			path := "/api/v1/students/search?q=" + url.QueryEscape(args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStudentsCmd() *cobra.Command {
	var counsellor, section string

	cmd := &cobra.Command{
		Use:   "students",
		Short: "List students, optionally filtered by counsellor or section",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if counsellor != "" {
				q.Set("counsellor", counsellor)
			}
			if section != "" {
				q.Set("section", section)
			}

			path := "/api/v1/admin/students"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var result StudentList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&counsellor, "counsellor", "", "Filter by counsellor name")
	cmd.Flags().StringVar(&section, "section", "", "Filter by year-branch-section key")

	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show roster aggregate statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StatsResult

			if err := client.Get("/api/v1/admin/stats", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights <query>",
		Short: "Ask for a natural-language note about matching records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"query": args[0]}
			var result InsightsResult

			if err := client.Post("/api/v1/insights", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
