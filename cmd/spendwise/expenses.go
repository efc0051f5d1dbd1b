package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Veraticus/spendwise/internal/cli"
	"github.com/Veraticus/spendwise/internal/model"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage expenses",
		Long:  `List, add, update, and delete expense records.`,
	}

	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(updateExpenseCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Long:  `Display expenses, newest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			expenses := s.Expenses()
			if len(expenses) == 0 {
				fmt.Println(cli.FormatInfo("No expenses yet. Use 'spendwise expenses add' to record one."))
				return nil
			}
			if limit > 0 && len(expenses) > limit {
				expenses = expenses[:limit]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Description"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Amount"))

			for _, e := range expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%s\n",
					e.ID, e.Date, e.Description, e.Category, e.Amount.StringFixed(2))
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n expenses (0 = all)")
	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		amountStr string
		category  string
		dateStr   string
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new expense",
		Long: `Record a new expense. When no category is given, the AI suggestion
service proposes one; a suggestion matching an existing category
(ignoring case) is applied automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			description := args[0]

			amount, err := decimal.NewFromString(strings.TrimSpace(amountStr))
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			date := model.Today()
			if dateStr != "" {
				if date, err = model.ParseDate(dateStr); err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
			}

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if category == "" {
				category, err = suggestCategoryName(ctx, s, description)
				if err != nil {
					return err
				}
			}

			expense, err := s.AddExpense(ctx, model.Expense{
				Description: description,
				Amount:      amount,
				Category:    category,
				Date:        date,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s: %s ($%s, %s)",
				expense.ID, expense.Description, expense.Amount.StringFixed(2), expense.Category)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "expense amount (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name (omit to ask the AI)")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "expense date as YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func updateExpenseCmd() *cobra.Command {
	var (
		description string
		amountStr   string
		category    string
		dateStr     string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an expense",
		Long:  `Replace fields on an existing expense. Unset flags keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			expense, ok := s.Expense(id)
			if !ok {
				return fmt.Errorf("no expense with ID %s", id)
			}

			if description != "" {
				expense.Description = description
			}
			if amountStr != "" {
				amount, amtErr := decimal.NewFromString(strings.TrimSpace(amountStr))
				if amtErr != nil {
					return fmt.Errorf("invalid amount %q: %w", amountStr, amtErr)
				}
				expense.Amount = amount
			}
			if category != "" {
				expense.Category = category
			}
			if dateStr != "" {
				date, dateErr := model.ParseDate(dateStr)
				if dateErr != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, dateErr)
				}
				expense.Date = date
			}

			if err := s.UpdateExpense(ctx, expense); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Updated " + id))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "new amount")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category name")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "new date as YYYY-MM-DD")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, ok := s.Expense(id); !ok {
				fmt.Println(cli.FormatWarning("No expense with ID " + id))
				return nil
			}

			if err := s.DeleteExpense(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Deleted " + id))
			return nil
		},
	}
}
