package commands

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/datakit-labs/corpusload/internal/cli/config"
	"github.com/datakit-labs/corpusload/internal/cli/output"
	"github.com/datakit-labs/corpusload/internal/corpus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	languages := config.DefaultLanguages
	if v := os.Getenv("CORPUSLOAD_LANGUAGES"); v != "" {
		languages = strings.Split(v, ",")
		for i := range languages {
			languages[i] = strings.TrimSpace(languages[i])
		}
	}

	return &config.Config{
		DataDir:      getEnvOrDefault("CORPUSLOAD_DATA_DIR", config.DefaultDataDir),
		Dataset:      getEnvOrDefault("CORPUSLOAD_DATASET", config.DefaultDataset),
		Languages:    languages,
		Namespace:    getEnvOrDefault("CORPUSLOAD_NAMESPACE", config.DefaultNamespace),
		MaxFiles:     config.DefaultMaxFiles,
		AssumeYes:    os.Getenv("CORPUSLOAD_ASSUME_YES") == "true",
		Verbose:      os.Getenv("CORPUSLOAD_VERBOSE") == "true",
		OutputFormat: getEnvOrDefault("CORPUSLOAD_OUTPUT", config.DefaultOutput),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// confirmDownload asks whether to trigger a download. --yes (or the
// assume_yes config key) answers without interaction; otherwise one y/n
// question is asked unless stdin is a non-interactive terminal stream.
func confirmDownload(cmd *cobra.Command, cc *CommandContext) bool {
	if cc.Cfg.AssumeYes {
		return true
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		cc.Renderer.Muted("Refusing to download without confirmation; pass --yes to proceed.")
		return false
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Download dataset %s to %s? [y/N]: ", cc.Cfg.Dataset, cc.Cfg.DataDir)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// expectedFileCount counts the JSONL files a load run will touch, for
// progress display. Errors are ignored; the count is display-only.
func expectedFileCount(cfg *config.Config) int64 {
	var total int64
	for _, langDir := range cfg.LangDirs() {
		entries, err := os.ReadDir(filepath.Join(cfg.DataDir, langDir))
		if err != nil {
			continue
		}
		n := 0
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), corpus.Ext) {
				n++
			}
		}
		if cfg.MaxFiles > 0 && n > cfg.MaxFiles {
			n = cfg.MaxFiles
		}
		total += int64(n)
	}
	return total
}

// loadCorpus runs the directory walk with a progress tracker attached.
func loadCorpus(cc *CommandContext) (corpus.Corpus, error) {
	p := cc.Renderer.NewProgress("Loading files", expectedFileCount(cc.Cfg), false)
	defer p.Done()

	loader := corpus.NewLoader(cc.Logger)
	loader.OnFile = func(string) { p.Increment(1) }

	return loader.LoadAll(cc.Cfg.DataDir, cc.Cfg.LangDirs(), cc.Cfg.MaxFiles)
}
