package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/spendwise/internal/cli"
	"github.com/Veraticus/spendwise/internal/export"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import expenses from CSV",
		Long: `Read expenses from a CSV file in the export format and add them to
the collection. Imported records get fresh IDs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			f, err := os.Open(path) // #nosec G304
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer func() { _ = f.Close() }()

			expenses, err := export.ImportCSV(f)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
			if len(expenses) == 0 {
				fmt.Println(cli.FormatInfo("Nothing to import."))
				return nil
			}

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			bar := progressbar.NewOptions(len(expenses),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Importing expenses...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
			)

			imported := 0
			for _, e := range expenses {
				e.ID = "" // the store mints fresh IDs
				if _, addErr := s.AddExpense(ctx, e); addErr != nil {
					_ = bar.Clear()
					return fmt.Errorf("failed to import %q: %w", e.Description, addErr)
				}
				imported++
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d expenses from %s", imported, path)))
			return nil
		},
	}
}
