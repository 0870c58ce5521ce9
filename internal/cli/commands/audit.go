package commands

import (
	"fmt"
	"strings"

	"github.com/datakit-labs/corpusload/internal/cli/output"
	"github.com/datakit-labs/corpusload/internal/corpus"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewAuditCommand creates the audit command.
func NewAuditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Load the corpus and audit key consistency",
		Long: `Load the corpus and report which field names are used inconsistently
across records.

The audit is a global summary over every record in every file and language:
the set of all keys seen anywhere, and the subset of those keys absent from
at least one record. No per-record attribution is kept.`,
		Example: `  # Audit the loaded corpus
  corpusload audit

  # Audit all files, not just the first per language
  corpusload audit --max-files 0

  # Machine-readable key sets
  corpusload audit --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAudit(cmd)
		},
	}
}

func runAudit(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	c, err := loadCorpus(cc)
	if err != nil {
		return err
	}

	return renderAudit(cc, c)
}

func renderAudit(cc *CommandContext, c corpus.Corpus) error {
	allKeys, missingKeys := AuditReport(c)
	r := cc.Renderer

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.AuditOutput{
			AllKeys:     allKeys,
			MissingKeys: missingKeys,
			Load: output.LoadSummary{
				Languages: len(c),
				Files:     c.Files(),
				Records:   c.Records(),
			},
		})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Key audit"))
		r.Println("")
		r.Println(output.FormatKeyValue("All keys", formatKeyList(allKeys)))
		r.Println(output.FormatKeyValue("Missing somewhere", formatKeyList(missingKeys)))
	default:
		r.Header(1, "Key audit")
		if len(allKeys) == 0 {
			r.Muted("No records loaded, nothing to audit.")
			return nil
		}

		missing := make(map[string]bool, len(missingKeys))
		for _, k := range missingKeys {
			missing[k] = true
		}

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Key", "Coverage"})
		for _, k := range allKeys {
			coverage := "every record"
			if missing[k] {
				coverage = "missing somewhere"
			}
			t.AppendRow(table.Row{k, coverage})
		}
		t.Render()

		if len(missingKeys) == 0 {
			r.Success("All records share the same key set")
		} else {
			r.Warning(fmt.Sprintf("%d of %d keys are missing from at least one record", len(missingKeys), len(allKeys)))
		}
	}
	return nil
}

// AuditReport runs the key audit and returns both sets sorted for output.
func AuditReport(c corpus.Corpus) (allKeys, missingKeys []string) {
	all, missing := corpus.AuditKeys(c)
	return corpus.SortedKeys(all), corpus.SortedKeys(missing)
}

func formatKeyList(keys []string) string {
	if len(keys) == 0 {
		return "(none)"
	}
	return strings.Join(keys, ", ")
}
