package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/spendwise/internal/cli"
	"github.com/Veraticus/spendwise/internal/model"
	"github.com/Veraticus/spendwise/internal/store"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add, and delete the categories expenses are organized into.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			categories := s.Categories()
			if len(categories) == 0 {
				fmt.Println(cli.FormatInfo("No categories found. Use 'spendwise categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Icon"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("In use"))

			for _, cat := range categories {
				inUse := ""
				if s.CategoryInUse(cat.Name) {
					inUse = cli.SuccessIcon
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					cat.ID, model.IconGlyph(cat.Icon), cat.Name, inUse)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat, err := s.AddCategory(ctx, args[0], icon)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %s: %s %s",
				cat.ID, model.IconGlyph(cat.Icon), cat.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", model.DefaultIcon,
		fmt.Sprintf("icon name (one of: %v)", model.IconNames()))
	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long:  `Remove a category. Categories referenced by any expense cannot be deleted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat, ok := s.Category(id)
			if !ok {
				fmt.Println(cli.FormatWarning("No category with ID " + id))
				return nil
			}

			if err := s.DeleteCategory(ctx, id); err != nil {
				if errors.Is(err, store.ErrCategoryInUse) {
					return fmt.Errorf("category %q still has expenses; recategorize them first", cat.Name)
				}
				return err
			}

			fmt.Println(cli.FormatSuccess("Deleted category " + cat.Name))
			return nil
		},
	}
}
