package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harunnryd/skillmart/internal/config"
	"github.com/harunnryd/skillmart/internal/store"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed templates/config.yaml
var embeddedDefaultConfig []byte

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Manage the Skillmart configuration file and data directory.`,
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Dump fully resolved configuration",
	Long:  `Display current configuration with all defaults applied and environment variables resolved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := loadConfigForCommand(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(loadedCfg); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		return enc.Close()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration and data directory",
	Long: `Create a default configuration file at $HOME/.skillmart/config.yaml if it doesn't exist,
and create empty skills.json and categories.json in the catalog data directory if they are missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		configPath, err := config.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return fmt.Errorf("failed to create config directory %s: %w", filepath.Dir(configPath), err)
		}

		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintf(out, "Config already exists at %s\n", configPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to check config file: %w", err)
		} else {
			defaultConfig := strings.TrimSpace(string(embeddedDefaultConfig)) + "\n"
			if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
				return fmt.Errorf("failed to write config to %s: %w", configPath, err)
			}
			fmt.Fprintf(out, "✓ Initialized config at %s\n", configPath)
		}

		loadedCfg, err := loadConfigForCommand(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		lockCfg, err := store.FileLockConfigFrom(loadedCfg.Store)
		if err != nil {
			return err
		}

		created, err := store.NewCatalogStore(loadedCfg.Catalog.DataDir, lockCfg).EnsureDataset(commandContext(cmd))
		if err != nil {
			return fmt.Errorf("failed to prepare data directory: %w", err)
		}
		for _, path := range created {
			fmt.Fprintf(out, "✓ Created %s\n", path)
		}
		if len(created) == 0 {
			fmt.Fprintf(out, "Dataset already present in %s\n", loadedCfg.Catalog.DataDir)
		}

		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintln(out, "1. Add skills to skills.json and categories to categories.json")
		fmt.Fprintln(out, "2. Run 'skillmart config view' to verify your configuration")
		fmt.Fprintln(out, "3. Run 'skillmart serve' to start the HTTP API")
		return nil
	},
}

func loadConfigForCommand(cmd *cobra.Command) (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	return config.Load(cmd)
}

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
