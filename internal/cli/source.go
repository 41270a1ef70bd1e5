package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

func newSourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source",
		Short: "Manage the master sheet source",
	}

	cmd.AddCommand(newSourceGetCmd())
	cmd.AddCommand(newSourceSetCmd())

	return cmd
}

func newSourceGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current sheet URL and sync state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SourceResult

			if err := client.Get("/api/v1/admin/source", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSourceSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <share-url>",
		Short: "Point the directory at a new master sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"sheet_url": args[0]}
			var result RepointResult

			if err := client.Do(http.MethodPut, "/api/v1/admin/source", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Re-fetch the roster from the configured sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SyncResult

			if err := client.Post("/api/v1/admin/sync", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
