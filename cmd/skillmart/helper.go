package main

import (
	"context"
	"fmt"
	"time"

	"github.com/harunnryd/skillmart/internal/catalog/formatter"
	"github.com/harunnryd/skillmart/internal/catalog/repository"

	"github.com/spf13/cobra"
)

const commandTimeout = 30 * time.Second

type catalogRepos struct {
	skills     *repository.Skills
	categories *repository.Categories
}

// executeWithCatalog resolves the process-wide provider and hands fn the
// repositories plus a bounded context.
func executeWithCatalog(cmd *cobra.Command, fn func(ctx context.Context, repos catalogRepos) error) error {
	if cfg == nil {
		return fmt.Errorf("config not loaded")
	}

	skills, categories, err := repository.Default(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize catalog: %w", err)
	}

	ctx, cancel := context.WithTimeout(commandContext(cmd), commandTimeout)
	defer cancel()

	return fn(ctx, catalogRepos{skills: skills, categories: categories})
}

// render formats with the --output format and prints the result.
func render(cmd *cobra.Command, fn func(formatter.CatalogFormatter) (string, error)) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	format, err := formatter.ParseOutputFormat(outputFormat)
	if err != nil {
		return err
	}

	f, err := formatter.NewFormatterFactory().Create(format)
	if err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	output, err := fn(f)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
