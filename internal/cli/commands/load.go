package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/datakit-labs/corpusload/internal/cli/output"
	"github.com/datakit-labs/corpusload/internal/corpus"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load JSONL files from the language directories",
		Long: `Walk the configured language directories under the data directory and
parse their newline-delimited JSON files into memory, then report what was
loaded.

Each language directory is <lang><namespace>, e.g. enwiki_namespace_0.
Directories missing on disk are reported and skipped. The per-language file
cap applies to names in sorted order.`,
		Example: `  # Load with settings from corpusload.yaml
  corpusload load

  # Load every file from three languages
  corpusload load --langs en,fr,de --max-files 0

  # Machine-readable summary
  corpusload load --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLoad(cmd)
		},
	}
}

func runLoad(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	c, err := loadCorpus(cc)
	if err != nil {
		return err
	}

	return renderLoad(cc, c)
}

// buildLoadOutput assembles the load report in configured-language order.
func buildLoadOutput(cc *CommandContext, c corpus.Corpus) output.LoadOutput {
	out := output.LoadOutput{DataDir: cc.Cfg.DataDir}
	for _, langDir := range cc.Cfg.LangDirs() {
		files := c[langDir]
		records := 0
		for _, recs := range files {
			records += len(recs)
		}
		st, err := os.Stat(filepath.Join(cc.Cfg.DataDir, langDir))
		out.Languages = append(out.Languages, output.LanguageInfo{
			Directory: langDir,
			Present:   err == nil && st.IsDir(),
			Files:     len(files),
			Records:   records,
		})
	}
	out.Summary = output.LoadSummary{
		Languages: len(c),
		Files:     c.Files(),
		Records:   c.Records(),
	}
	return out
}

func renderLoad(cc *CommandContext, c corpus.Corpus) error {
	out := buildLoadOutput(cc, c)
	r := cc.Renderer

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Corpus"))
		r.Println("")
		for _, lang := range out.Languages {
			if !lang.Present {
				r.Println(fmt.Sprintf("- %s: missing", lang.Directory))
				continue
			}
			r.Println(fmt.Sprintf("- %s: %d files, %d records", lang.Directory, lang.Files, lang.Records))
		}
		r.Println("")
		r.Println(output.FormatKeyValue("Total", fmt.Sprintf("%d languages, %d files, %d records",
			out.Summary.Languages, out.Summary.Files, out.Summary.Records)))
	default:
		r.Header(1, "Corpus")
		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Directory", "Present", "Files", "Records"})
		for _, lang := range out.Languages {
			t.AppendRow(table.Row{lang.Directory, lang.Present, lang.Files, lang.Records})
		}
		t.Render()
		r.Success(fmt.Sprintf("Loaded %d languages with %d files (%d records)",
			out.Summary.Languages, out.Summary.Files, out.Summary.Records))
	}
	return nil
}
