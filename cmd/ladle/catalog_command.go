package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ladle/internal/catalog"
	"ladle/internal/config"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog asset utilities",
	}
	catalogCmd.AddCommand(newCatalogInitCommand(ctx))
	return catalogCmd
}

func newCatalogInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the bundled starter catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				target = cfg.Paths.CatalogPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve catalog path: %w", err)
				}
				target = expanded
			}

			if err := catalog.WriteStarter(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter catalog to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetPath, "path", "", "Catalog destination (defaults to paths.catalog_path)")
	return cmd
}
