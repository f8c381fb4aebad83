package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ladle/internal/config"
	"ladle/internal/library"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecipeID(args[0])
			if err != nil {
				return err
			}
			return ctx.withRepository(func(cfg *config.Config, repo *library.Repository) error {
				entry, err := repo.ByID(cmd.Context(), id)
				if errors.Is(err, library.ErrNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "No recipe with id %d.\n", id)
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderRecipeDetail(*entry, stdoutIsTerminal()))
				return nil
			})
		},
	}
}
