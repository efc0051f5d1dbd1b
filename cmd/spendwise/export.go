package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/spendwise/internal/cli"
	"github.com/Veraticus/spendwise/internal/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses",
		Long:  `Export the expense collection to CSV or a Google Sheet.`,
	}

	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(exportSheetsCmd())

	return cmd
}

func exportCSVCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export expenses as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := os.Stdout
			if output != "" {
				f, createErr := os.Create(output) // #nosec G304
				if createErr != nil {
					return fmt.Errorf("failed to create %s: %w", output, createErr)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if err := export.WriteCSV(out, s.Expenses()); err != nil {
				return fmt.Errorf("failed to write CSV: %w", err)
			}

			if output != "" {
				fmt.Println(cli.FormatSuccess("Exported " + output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func exportSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "Export expenses to Google Sheets",
		Long: `Publish the expense collection to a Google Sheet. Configure
credentials under the sheets.* keys or the GOOGLE_SHEETS_*
environment variables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cfg := sheetsConfigFromViper()
			writer, err := export.NewSheetsWriter(ctx, cfg, slog.Default())
			if err != nil {
				return err
			}

			if err := writer.Write(ctx, s.Expenses()); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Exported to Google Sheets"))
			return nil
		},
	}
}

func sheetsConfigFromViper() export.SheetsConfig {
	cfg := export.DefaultSheetsConfig()

	cfg.ClientID = firstNonEmpty(viper.GetString("sheets.client_id"), os.Getenv("GOOGLE_SHEETS_CLIENT_ID"))
	cfg.ClientSecret = firstNonEmpty(viper.GetString("sheets.client_secret"), os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET"))
	cfg.RefreshToken = firstNonEmpty(viper.GetString("sheets.refresh_token"), os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN"))
	cfg.ServiceAccountPath = firstNonEmpty(viper.GetString("sheets.service_account_path"), os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"))
	cfg.SpreadsheetID = firstNonEmpty(viper.GetString("sheets.spreadsheet_id"), os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"))

	if name := viper.GetString("sheets.spreadsheet_name"); name != "" {
		cfg.SpreadsheetName = name
	}
	if tz := viper.GetString("sheets.timezone"); tz != "" {
		cfg.TimeZone = tz
	}

	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
