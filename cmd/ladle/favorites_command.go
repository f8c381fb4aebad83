package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ladle/internal/config"
	"ladle/internal/library"
)

func newFavoritesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List saved recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRepository(func(cfg *config.Config, repo *library.Repository) error {
				saved, err := repo.Favorites(cmd.Context())
				if err != nil {
					return err
				}
				if len(saved) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No saved recipes yet. Try `ladle favorite <id>`.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderRecipeTable(saved, stdoutIsTerminal()))
				return nil
			})
		},
	}
}
