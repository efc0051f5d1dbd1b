package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/spendwise/internal/cli"
	"github.com/Veraticus/spendwise/internal/model"
	"github.com/Veraticus/spendwise/internal/stats"
)

func statsCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show spending statistics",
		Long:  `Print headline figures, a monthly breakdown, and per-category totals.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			expenses := s.Expenses()
			today := model.Today()
			if year == 0 {
				year = today.Year()
			}

			summary := stats.Summarize(expenses, today)

			fmt.Println(cli.FormatTitle("Spending Summary"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total spent:\t$%s\n", summary.Total.StringFixed(2))
			fmt.Fprintf(w, "This month:\t$%s\n", summary.ThisMonth.StringFixed(2))
			fmt.Fprintf(w, "This year:\t$%s\n", summary.ThisYear.StringFixed(2))
			fmt.Fprintf(w, "Average:\t$%s\n", summary.AverageTransaction.StringFixed(2))
			fmt.Fprintf(w, "Expenses:\t%d\n", summary.Count)
			_ = w.Flush()

			fmt.Println()
			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s Monthly totals for %d", cli.ChartIcon, year)))
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for i, total := range stats.MonthlyTotals(expenses, year) {
				if total.IsZero() {
					continue
				}
				fmt.Fprintf(w, "%s\t$%s\n", stats.MonthName(i+1), total.StringFixed(2))
			}
			_ = w.Flush()

			fmt.Println()
			fmt.Println(cli.TitleStyle.Render("By category"))
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Total"))
			fmt.Fprintf(w, "%s\t%s\n", strings.Repeat("-", 20), strings.Repeat("-", 10))
			for _, cat := range stats.CategoryTotals(expenses) {
				fmt.Fprintf(w, "%s\t$%s\n", cat.Name, cat.Total.StringFixed(2))
			}
			_ = w.Flush()

			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "year for the monthly breakdown (default: current year)")
	return cmd
}
