package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/datakit-labs/corpusload/internal/cli/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the config keys written to a starter config file.
// Kept separate from config.Config so the yaml field order is stable.
type fileConfig struct {
	DataDir   string   `yaml:"data_dir"`
	Dataset   string   `yaml:"dataset"`
	Languages []string `yaml:"languages"`
	Namespace string   `yaml:"namespace"`
	MaxFiles  int      `yaml:"max_files"`
	Output    string   `yaml:"output"`
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter corpusload.yaml",
		Long: `Write a corpusload.yaml with the default configuration into the given
directory (default: current directory), ready to edit.`,
		Example: `  # Initialize in the current directory
  corpusload init

  # Initialize a new project directory
  corpusload init my-corpus

  # Overwrite an existing config
  corpusload init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	cc := NewCommandContext(cmd)

	if dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "corpusload.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("corpusload.yaml already exists. Use --force to overwrite")
	}

	data, err := yaml.Marshal(fileConfig{
		DataDir:   config.DefaultDataDir,
		Dataset:   config.DefaultDataset,
		Languages: config.DefaultLanguages,
		Namespace: config.DefaultNamespace,
		MaxFiles:  config.DefaultMaxFiles,
		Output:    config.DefaultOutput,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	cc.Renderer.Success("Wrote " + configPath)
	cc.Renderer.Println("")
	cc.Renderer.Println("Next steps:")
	cc.Renderer.Println("  1. Set KAGGLE_USERNAME and KAGGLE_KEY (or create ~/.kaggle/kaggle.json)")
	cc.Renderer.Println("  2. Run 'corpusload fetch --yes' to download the dataset")
	cc.Renderer.Println("  3. Run 'corpusload audit' to check key consistency")

	return nil
}
