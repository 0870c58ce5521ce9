package commands

import (
	"os"
	"path/filepath"

	"github.com/datakit-labs/corpusload/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fetch if needed, then load and audit the corpus",
		Long: `Run the full pipeline: when none of the expected language directories
exist yet, offer to download the dataset first, then load the corpus and
audit key consistency.

The download needs confirmation: pass --yes, set assume_yes in
corpusload.yaml, or answer the prompt on an interactive terminal.`,
		Example: `  # Full pipeline, downloading on first run without prompting
  corpusload run --yes

  # Audit everything that is already on disk
  corpusload run --max-files 0`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd)
		},
	}
}

func runRun(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	if err := os.MkdirAll(cc.Cfg.DataDir, 0o750); err != nil {
		return err
	}

	if !anyLangDirExists(cc) {
		if confirmDownload(cmd, cc) {
			if err := fetchDataset(cmd, cc); err != nil {
				return err
			}
		} else {
			cc.Logger.Warn("skipping download, no language directories present", "data_dir", cc.Cfg.DataDir)
		}
	} else {
		cc.Logger.Debug("data already present, skipping download", "data_dir", cc.Cfg.DataDir)
	}

	c, err := loadCorpus(cc)
	if err != nil {
		return err
	}

	if cc.Renderer.EffectiveMode() == output.ModeJSON {
		allKeys, missingKeys := AuditReport(c)
		return cc.Renderer.JSON(output.RunOutput{
			Load: buildLoadOutput(cc, c),
			Audit: output.AuditOutput{
				AllKeys:     allKeys,
				MissingKeys: missingKeys,
				Load: output.LoadSummary{
					Languages: len(c),
					Files:     c.Files(),
					Records:   c.Records(),
				},
			},
		})
	}

	if err := renderLoad(cc, c); err != nil {
		return err
	}
	return renderAudit(cc, c)
}

// anyLangDirExists reports whether at least one expected language
// directory is already on disk.
func anyLangDirExists(cc *CommandContext) bool {
	for _, langDir := range cc.Cfg.LangDirs() {
		if st, err := os.Stat(filepath.Join(cc.Cfg.DataDir, langDir)); err == nil && st.IsDir() {
			return true
		}
	}
	return false
}
