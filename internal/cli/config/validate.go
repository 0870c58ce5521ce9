package config

import (
	"fmt"
	"os"

	"github.com/datakit-labs/corpusload/internal/kaggle"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if err := kaggle.ValidateDatasetRef(c.Dataset); err != nil {
		return err
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("languages must be a non-empty list of language codes")
	}
	for _, lang := range c.Languages {
		if lang == "" {
			return fmt.Errorf("languages must not contain empty entries")
		}
	}
	if c.MaxFiles < 0 {
		return fmt.Errorf("max_files must be >= 0 (0 loads all files)")
	}
	return nil
}

// ValidateDataDir checks that the data directory exists.
// Split out from Validate so help and fetch can run before any download.
func (c *Config) ValidateDataDir() error {
	if _, err := os.Stat(c.DataDir); os.IsNotExist(err) {
		return fmt.Errorf("data directory does not exist: %s\nHint: run 'corpusload fetch' or use --data-dir to point at existing data", c.DataDir)
	}
	return nil
}
