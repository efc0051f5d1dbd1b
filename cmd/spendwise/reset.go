package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/spendwise/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset to the sample dataset",
		Long:  `Discard all expenses and categories and restore the sample dataset.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				return fmt.Errorf("this discards every expense and category; re-run with --force to confirm")
			}

			s, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.Reset(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Collections reset to the sample dataset"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation check")
	return cmd
}
