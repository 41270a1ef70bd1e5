package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the uploaded roster",
	}

	cmd.AddCommand(newRosterUploadCmd())
	cmd.AddCommand(newRosterClearCmd())

	return cmd
}

func newRosterUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file.csv>",
		Short: "Replace the roster from a local CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer func() { _ = file.Close() }()

			var result UploadResult
			if err := client.DoRaw(http.MethodPost, "/api/v1/admin/roster", file, "text/csv", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRosterClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every record from the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the roster without --yes")
			}

			if err := client.Delete("/api/v1/admin/roster"); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Roster cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")

	return cmd
}
