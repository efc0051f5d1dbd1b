package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/spendwise/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Launch the full-screen dashboard: browse expenses, add new ones
with AI-assisted categorization, and watch the totals update.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cfg := tui.Config{
				Store:  s,
				Logger: slog.Default(),
			}

			// The dashboard works without a suggester; the AI field
			// just stays quiet.
			if suggester, sugErr := createSuggester(); sugErr == nil {
				cfg.Suggester = suggester
				defer func() { _ = suggester.Close() }()
			} else {
				slog.Debug("suggestions disabled", "reason", sugErr)
			}

			return tui.Run(ctx, cfg)
		},
	}
}
