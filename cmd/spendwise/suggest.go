package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/spendwise/internal/cli"
	"github.com/Veraticus/spendwise/internal/model"
	"github.com/Veraticus/spendwise/internal/store"
)

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <description>",
		Short: "Ask the AI for a category suggestion",
		Long: `Send a description to the AI suggestion service and print the
proposed category with its confidence. The suggestion is advisory:
nothing is written to the expense collection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			suggestion, cat, matched, err := fetchSuggestion(ctx, s, args[0])
			if err != nil {
				return err
			}

			if matched {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %s (%.0f%% confident)",
					model.IconGlyph(cat.Icon), cat.Name, suggestion.Confidence*100)))
				return nil
			}

			fmt.Println(cli.FormatInfo(fmt.Sprintf(
				"The AI suggested %q (%.0f%% confident), which matches no existing category.",
				suggestion.Category, suggestion.Confidence*100)))
			return nil
		},
	}
}

// fetchSuggestion asks the AI for a category and maps it onto the known
// categories, ignoring case. An unmatched suggestion is returned as-is
// with matched=false; it never creates a category.
func fetchSuggestion(ctx context.Context, s *store.Store, description string) (*model.Suggestion, model.Category, bool, error) {
	suggester, err := createSuggester()
	if err != nil {
		return nil, model.Category{}, false, err
	}
	defer func() { _ = suggester.Close() }()

	fmt.Println(cli.FormatInfo(cli.RobotIcon + " asking for a suggestion..."))

	suggestion, err := suggester.Suggest(ctx, description)
	if err != nil {
		return nil, model.Category{}, false, err
	}
	if suggestion == nil {
		return nil, model.Category{}, false, fmt.Errorf("no suggestion for an empty description")
	}

	cat, matched := model.MatchCategory(suggestion.Category, s.Categories())
	return suggestion, cat, matched, nil
}

// suggestCategoryName resolves a definite category name for an expense
// being added without one.
func suggestCategoryName(ctx context.Context, s *store.Store, description string) (string, error) {
	suggestion, cat, matched, err := fetchSuggestion(ctx, s, description)
	if err != nil {
		return "", err
	}
	if !matched {
		return "", fmt.Errorf("the AI suggested %q which matches no existing category; pass --category or add it first",
			suggestion.Category)
	}

	fmt.Println(cli.FormatInfo(fmt.Sprintf("%s %s (%.0f%% confident)",
		cli.RobotIcon, cat.Name, suggestion.Confidence*100)))
	return cat.Name, nil
}
