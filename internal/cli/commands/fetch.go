package commands

import (
	"fmt"

	"github.com/datakit-labs/corpusload/internal/cli/output"
	"github.com/datakit-labs/corpusload/internal/kaggle"
	"github.com/spf13/cobra"
)

// NewFetchCommand creates the fetch command.
func NewFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download and extract the configured dataset",
		Long: `Download the configured Kaggle dataset archive and extract it into the
data directory.

Credentials are taken from KAGGLE_USERNAME/KAGGLE_KEY or ~/.kaggle/kaggle.json,
the same locations the official Kaggle client uses.`,
		Example: `  # Download the default dataset into ./data
  corpusload fetch --yes

  # Download a different dataset
  corpusload fetch --dataset owner/slug --data-dir ./corpus --yes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd)
		},
	}
}

func runFetch(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	if !confirmDownload(cmd, cc) {
		return fmt.Errorf("download not confirmed")
	}

	if err := fetchDataset(cmd, cc); err != nil {
		return err
	}

	switch cc.Renderer.EffectiveMode() {
	case output.ModeJSON:
		return cc.Renderer.JSON(output.FetchOutput{
			Dataset: cc.Cfg.Dataset,
			DataDir: cc.Cfg.DataDir,
		})
	case output.ModeMarkdown:
		cc.Renderer.Println(output.FormatKeyValue("Dataset", cc.Cfg.Dataset))
		cc.Renderer.Println(output.FormatKeyValue("Extracted to", cc.Cfg.DataDir))
	default:
		cc.Renderer.Success(fmt.Sprintf("Dataset %s downloaded and extracted to %s", cc.Cfg.Dataset, cc.Cfg.DataDir))
	}
	return nil
}

// fetchDataset performs the download with a byte-level progress tracker.
func fetchDataset(cmd *cobra.Command, cc *CommandContext) error {
	creds, err := kaggle.LoadCredentials()
	if err != nil {
		return err
	}

	client := kaggle.NewClient(kaggle.DefaultConfig(), creds, cc.Logger)

	p := cc.Renderer.NewProgress("Downloading "+cc.Cfg.Dataset, 0, true)
	defer p.Done()

	return client.DownloadDataset(cmd.Context(), cc.Cfg.Dataset, cc.Cfg.DataDir,
		func(read, _ int64) { p.SetValue(read) })
}
