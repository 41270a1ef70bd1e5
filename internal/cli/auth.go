package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var role, passphrase string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if role == "admin" && passphrase == "" {
				return fmt.Errorf("--passphrase is required for the admin role")
			}

			req := map[string]string{
				"role":       role,
				"passphrase": passphrase,
			}
			var result AuthResult

			if err := client.Post("/api/v1/auth/login", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "user", "Role to log in as: user, admin")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Admin passphrase")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/auth/logout", nil, nil); err != nil {
				return err
			}

			// Forget the saved token regardless
			if err := cfg.SaveToken(""); err != nil {
				return fmt.Errorf("failed to clear token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Logged out")
			return nil
		},
	}
}

func newPassphraseCmd() *cobra.Command {
	var newPassphrase string

	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Change the admin passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"new_passphrase":     newPassphrase,
				"confirm_passphrase": newPassphrase,
			}

			if err := client.Post("/api/v1/admin/passphrase", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Passphrase changed")
			return nil
		},
	}

	cmd.Flags().StringVar(&newPassphrase, "new", "", "New passphrase (required)")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}
