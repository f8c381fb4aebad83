package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ladle/internal/config"
	"ladle/internal/library"
)

func newFavoriteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle a recipe's saved flag",
		Long: `Toggle a recipe's saved flag, like tapping the favorite icon.
Running the command twice restores the original state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecipeID(args[0])
			if err != nil {
				return err
			}
			return ctx.withRepository(func(cfg *config.Config, repo *library.Repository) error {
				entry, err := repo.ByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				if err := repo.ToggleSaved(cmd.Context(), entry); err != nil {
					return err
				}
				if entry.Saved {
					fmt.Fprintf(cmd.OutOrStdout(), "Saved %q.\n", entry.Name)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from favorites.\n", entry.Name)
				}
				return nil
			})
		},
	}
}
