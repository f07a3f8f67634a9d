package main

import (
	"context"

	"github.com/harunnryd/skillmart/internal/catalog/formatter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeWithCatalog(cmd, func(ctx context.Context, repos catalogRepos) error {
			st, err := repos.skills.Stats(ctx)
			if err != nil {
				return err
			}
			return render(cmd, func(f formatter.CatalogFormatter) (string, error) {
				return f.FormatStats(st)
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
