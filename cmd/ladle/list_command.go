package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ladle/internal/browse"
	"ladle/internal/config"
	"ladle/internal/greeting"
	"ladle/internal/library"
	"ladle/internal/recipes"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var categoryFlag string
	var searchFlag string
	var vegFlag bool
	var nonVegFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally filtered by category, search text, or vegetarian flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vegFlag && nonVegFlag {
				return fmt.Errorf("--veg and --non-veg are mutually exclusive")
			}
			return ctx.withRepository(func(cfg *config.Config, repo *library.Repository) error {
				engine := browse.NewEngine(repo, ctx.ensureLogger())
				runCtx := cmd.Context()

				var visible []recipes.Recipe
				var err error
				if categoryFlag != "" {
					category := resolveCategory(cfg, categoryFlag)
					if visible, err = engine.SetCategory(runCtx, &category); err != nil {
						return err
					}
				}
				if searchFlag != "" {
					if visible, err = engine.SetSearchQuery(runCtx, searchFlag); err != nil {
						return err
					}
				}
				if vegFlag || nonVegFlag {
					vegetarian := vegFlag
					if visible, err = engine.SetVegetarian(runCtx, &vegetarian); err != nil {
						return err
					}
				}
				if visible == nil {
					if visible, err = engine.Visible(runCtx); err != nil {
						return err
					}
				}

				fancy := stdoutIsTerminal()
				if fancy {
					fmt.Fprintln(cmd.OutOrStdout(), greeting.Message(time.Now()))
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderRecipeTable(visible, fancy))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Only recipes in this category")
	cmd.Flags().StringVar(&searchFlag, "search", "", "Only recipes whose name matches any word of this text")
	cmd.Flags().BoolVar(&vegFlag, "veg", false, "Only vegetarian recipes")
	cmd.Flags().BoolVar(&nonVegFlag, "non-veg", false, "Only non-vegetarian recipes")
	return cmd
}
