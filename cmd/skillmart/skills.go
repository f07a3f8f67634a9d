package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/formatter"
	"github.com/harunnryd/skillmart/internal/catalog/query"
	"github.com/harunnryd/skillmart/internal/catalog/repository"
	skerrors "github.com/harunnryd/skillmart/internal/errors"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:     "skills",
	Aliases: []string{"skill"},
	Short:   "Browse the skill catalog",
	Long:    `List, search and inspect skills, and record downloads and ratings.`,
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills matching a filter expression",
	Long: `List skills. --where takes space separated key=value pairs:

  category=<id> tag=<t> tags=<t1,t2> paid=<bool> pricing=open_source|free|paid
  min_rating=<n> max_price=<n> author=<name> q=<text> sort=<field>[:asc|desc]

Example: skillmart skills list --where 'category=navigation tag=slam q="lidar scan" sort=rating:desc'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		where, _ := cmd.Flags().GetString("where")
		q, err := query.Parse(where)
		if err != nil {
			return err
		}

		return executeWithCatalog(cmd, func(ctx context.Context, repos catalogRepos) error {
			skills, err := repos.skills.GetSkills(ctx, q.FilterPtr(), q.Sort)
			if err != nil {
				return err
			}
			return render(cmd, func(f formatter.CatalogFormatter) (string, error) {
				return f.FormatSkills(skills)
			})
		})
	},
}

var skillsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeWithCatalog(cmd, func(ctx context.Context, repos catalogRepos) error {
			skill, err := lookupSkill(ctx, repos, args[0])
			if err != nil {
				return err
			}
			return render(cmd, func(f formatter.CatalogFormatter) (string, error) {
				return f.FormatSkill(skill)
			})
		})
	},
}

var skillsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search skill names, descriptions and tags",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return fmt.Errorf("query cannot be empty")
		}
		return listSkills(cmd, func(ctx context.Context, repos catalogRepos) ([]domain.Skill, error) {
			return repos.skills.SearchSkills(ctx, text)
		})
	},
}

var skillsFeaturedCmd = &cobra.Command{
	Use:   "featured",
	Short: "List featured skills",
	Long:  `Featured skills have a rating of at least 4.5 and at least --min-downloads downloads, best rated first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		minDownloads, _ := cmd.Flags().GetInt64("min-downloads")
		if minDownloads < 0 {
			return skerrors.InvalidInput("--min-downloads must not be negative")
		}
		return listSkills(cmd, func(ctx context.Context, repos catalogRepos) ([]domain.Skill, error) {
			return repos.skills.GetFeaturedSkills(ctx, minDownloads)
		})
	},
}

var skillsPopularCmd = topCommand("popular", "List the most downloaded skills",
	func(r *repository.Skills) func(context.Context, int) ([]domain.Skill, error) {
		return r.GetPopularSkills
	})

var skillsRecentCmd = topCommand("recent", "List the most recently updated skills",
	func(r *repository.Skills) func(context.Context, int) ([]domain.Skill, error) {
		return r.GetRecentlyUpdatedSkills
	})

var skillsTopRatedCmd = topCommand("top-rated", "List the best rated skills",
	func(r *repository.Skills) func(context.Context, int) ([]domain.Skill, error) {
		return r.GetTopRatedSkills
	})

var skillsFreeCmd = &cobra.Command{
	Use:   "free",
	Short: "List skills that cost nothing",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSkills(cmd, func(ctx context.Context, repos catalogRepos) ([]domain.Skill, error) {
			return repos.skills.GetFreeSkills(ctx)
		})
	},
}

var skillsByAuthorCmd = &cobra.Command{
	Use:   "by-author [author]",
	Short: "List skills by an exact author name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSkills(cmd, func(ctx context.Context, repos catalogRepos) ([]domain.Skill, error) {
			return repos.skills.GetSkillsByAuthor(ctx, args[0])
		})
	},
}

var skillsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse skills the way the catalog page does",
	Long:  `Browse matches --q against name, description, tags and author, requires every --tag, and sorts by popular, recent or rating.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("q")
		category, _ := cmd.Flags().GetString("category")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		sortKey, _ := cmd.Flags().GetString("sort")

		sort, err := repository.ParseBrowseSort(sortKey)
		if err != nil {
			return fmt.Errorf("%w: %v", skerrors.ErrInvalidInput, err)
		}

		bq := repository.BrowseQuery{
			Search:   search,
			Category: domain.CategoryID(category),
			Tags:     tags,
			Sort:     sort,
		}
		return listSkills(cmd, func(ctx context.Context, repos catalogRepos) ([]domain.Skill, error) {
			return repos.skills.Browse(ctx, bq)
		})
	},
}

var skillsDownloadCmd = &cobra.Command{
	Use:   "download [id]",
	Short: "Record a download for a skill",
	Long:  `Increment the download counter. The change only outlives this process when catalog.write_through is enabled.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeWithCatalog(cmd, func(ctx context.Context, repos catalogRepos) error {
			skill, err := lookupSkill(ctx, repos, args[0])
			if err != nil {
				return err
			}
			if err := repos.skills.IncrementDownloads(ctx, skill.ID); err != nil {
				return err
			}
			return showSkill(ctx, cmd, repos, skill.ID)
		})
	},
}

var skillsRateCmd = &cobra.Command{
	Use:   "rate [id] [rating]",
	Short: "Set the rating of a skill",
	Long:  `Set the rating (0 to 5). The change only outlives this process when catalog.write_through is enabled.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, err := strconv.ParseFloat(args[1], 64)
		if err != nil || math.IsNaN(rating) || rating < 0 || rating > 5 {
			return skerrors.InvalidInput("rating must be a number between 0 and 5, got %q", args[1])
		}

		return executeWithCatalog(cmd, func(ctx context.Context, repos catalogRepos) error {
			skill, err := lookupSkill(ctx, repos, args[0])
			if err != nil {
				return err
			}
			if err := repos.skills.UpdateRating(ctx, skill.ID, rating); err != nil {
				return err
			}
			return showSkill(ctx, cmd, repos, skill.ID)
		})
	},
}

func topCommand(use, short string, pick func(*repository.Skills) func(context.Context, int) ([]domain.Skill, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			if limit < 0 {
				return skerrors.InvalidInput("--limit must not be negative")
			}
			return listSkills(cmd, func(ctx context.Context, repos catalogRepos) ([]domain.Skill, error) {
				return pick(repos.skills)(ctx, limit)
			})
		},
	}
	cmd.Flags().IntP("limit", "n", repository.DefaultLimit, "Maximum number of skills")
	return cmd
}

func listSkills(cmd *cobra.Command, fetch func(context.Context, catalogRepos) ([]domain.Skill, error)) error {
	return executeWithCatalog(cmd, func(ctx context.Context, repos catalogRepos) error {
		skills, err := fetch(ctx, repos)
		if err != nil {
			return err
		}
		return render(cmd, func(f formatter.CatalogFormatter) (string, error) {
			return f.FormatSkills(skills)
		})
	})
}

func lookupSkill(ctx context.Context, repos catalogRepos, id string) (domain.Skill, error) {
	skill, ok, err := repos.skills.GetSkillByID(ctx, domain.SkillID(id))
	if err != nil {
		return domain.Skill{}, err
	}
	if !ok {
		return domain.Skill{}, skerrors.NotFound("skill %q", id)
	}
	return skill, nil
}

func showSkill(ctx context.Context, cmd *cobra.Command, repos catalogRepos, id domain.SkillID) error {
	skill, err := lookupSkill(ctx, repos, id.String())
	if err != nil {
		return err
	}
	return render(cmd, func(f formatter.CatalogFormatter) (string, error) {
		return f.FormatSkill(skill)
	})
}

func init() {
	skillsListCmd.Flags().StringP("where", "w", "", "Filter expression, e.g. 'category=navigation min_rating=4.5'")
	skillsFeaturedCmd.Flags().Int64("min-downloads", repository.DefaultFeaturedMinDownloads, "Minimum downloads")
	skillsBrowseCmd.Flags().String("q", "", "Search text")
	skillsBrowseCmd.Flags().String("category", string(repository.AllCategories), "Category id, or 'all'")
	skillsBrowseCmd.Flags().StringSlice("tag", nil, "Required tag (repeatable)")
	skillsBrowseCmd.Flags().String("sort", string(repository.BrowsePopular), "Sort by popular, recent or rating")

	skillsCmd.AddCommand(
		skillsListCmd,
		skillsShowCmd,
		skillsSearchCmd,
		skillsFeaturedCmd,
		skillsPopularCmd,
		skillsRecentCmd,
		skillsTopRatedCmd,
		skillsFreeCmd,
		skillsByAuthorCmd,
		skillsBrowseCmd,
		skillsDownloadCmd,
		skillsRateCmd,
	)
	rootCmd.AddCommand(skillsCmd)
}
