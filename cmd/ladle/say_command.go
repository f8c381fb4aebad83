package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ladle/internal/browse"
	"ladle/internal/config"
	"ladle/internal/library"
	"ladle/internal/recipes"
	"ladle/internal/voice"
)

func newSayCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "say <phrase>...",
		Short: "Apply a voice-style command and list the result",
		Long: `Apply a voice-style filter command and list the matching recipes.

Examples:
  ladle say snack
  ladle say veg
  ladle say search paneer tikka
  ladle say favorites`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.Join(args, " ")
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			command, err := voice.Parse(phrase, cfg.Browse.Categories)
			if err != nil {
				return err
			}

			return ctx.withRepository(func(cfg *config.Config, repo *library.Repository) error {
				out := cmd.OutOrStdout()
				runCtx := cmd.Context()

				if command.Kind == voice.KindShowFavorites {
					saved, err := repo.Favorites(runCtx)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, "Showing saved recipes")
					fmt.Fprintln(out, renderRecipeTable(saved, stdoutIsTerminal()))
					return nil
				}

				engine := browse.NewEngine(repo, ctx.ensureLogger())
				var visible []recipes.Recipe
				switch command.Kind {
				case voice.KindShowAll:
					if visible, err = engine.Reset(runCtx); err != nil {
						return err
					}
					fmt.Fprintln(out, "Showing all recipes")
				case voice.KindSetVegetarian:
					vegetarian := command.Vegetarian
					if visible, err = engine.SetVegetarian(runCtx, &vegetarian); err != nil {
						return err
					}
				case voice.KindSetCategory:
					category := command.Category
					if visible, err = engine.SetCategory(runCtx, &category); err != nil {
						return err
					}
				case voice.KindSearch:
					if visible, err = engine.SetSearchQuery(runCtx, command.Query); err != nil {
						return err
					}
					fmt.Fprintf(out, "Showing recipes that match %q\n", command.Query)
				}

				fmt.Fprintln(out, renderRecipeTable(visible, stdoutIsTerminal()))
				return nil
			})
		},
	}
}
