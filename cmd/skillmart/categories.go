package main

import (
	"context"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/formatter"
	skerrors "github.com/harunnryd/skillmart/internal/errors"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"category"},
	Short:   "Browse skill categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		popular, _ := cmd.Flags().GetBool("popular")

		return executeWithCatalog(cmd, func(ctx context.Context, repos catalogRepos) error {
			var (
				categories []domain.Category
				err        error
			)
			if popular {
				categories, err = repos.categories.GetCategoriesByPopularity(ctx)
			} else {
				categories, err = repos.categories.GetCategories(ctx)
			}
			if err != nil {
				return err
			}
			return render(cmd, func(f formatter.CatalogFormatter) (string, error) {
				return f.FormatCategories(categories)
			})
		})
	},
}

var categoriesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a category and its skills",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := domain.CategoryID(args[0])

		return executeWithCatalog(cmd, func(ctx context.Context, repos catalogRepos) error {
			category, ok, err := repos.categories.GetCategoryByID(ctx, id)
			if err != nil {
				return err
			}
			if !ok {
				return skerrors.NotFound("category %q", id)
			}
			skills, err := repos.skills.GetSkillsByCategory(ctx, id)
			if err != nil {
				return err
			}

			if err := render(cmd, func(f formatter.CatalogFormatter) (string, error) {
				return f.FormatCategory(category)
			}); err != nil {
				return err
			}
			return render(cmd, func(f formatter.CatalogFormatter) (string, error) {
				return f.FormatSkills(skills)
			})
		})
	},
}

var categoriesDriftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Report categories whose stored count differs from their skills",
	Long:  `Compare each category's stored count with the number of skills that reference it. Skills in categories that do not exist are reported as missing categories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeWithCatalog(cmd, func(ctx context.Context, repos catalogRepos) error {
			drift, err := repos.categories.CategoryCountDrift(ctx)
			if err != nil {
				return err
			}
			return render(cmd, func(f formatter.CatalogFormatter) (string, error) {
				return f.FormatDrift(drift)
			})
		})
	},
}

func init() {
	categoriesListCmd.Flags().Bool("popular", false, "Order by stored skill count")

	categoriesCmd.AddCommand(categoriesListCmd, categoriesShowCmd, categoriesDriftCmd)
	rootCmd.AddCommand(categoriesCmd)
}
