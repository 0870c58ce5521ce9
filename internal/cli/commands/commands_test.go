// Package commands tests CLI command creation and rendering.
package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/datakit-labs/corpusload/internal/cli/config"
	"github.com/datakit-labs/corpusload/internal/cli/output"
	"github.com/datakit-labs/corpusload/internal/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFetchCommand(t *testing.T) {
	cmd := NewFetchCommand()

	assert.Equal(t, "fetch", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewLoadCommand(t *testing.T) {
	cmd := NewLoadCommand()

	assert.Equal(t, "load", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewAuditCommand(t *testing.T) {
	cmd := NewAuditCommand()

	assert.Equal(t, "audit", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewRunCommand(t *testing.T) {
	cmd := NewRunCommand()

	assert.Equal(t, "run", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewInitCommand(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("force"), "flag \"force\" should exist")
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "corpusload v1.2.3")
}

// testContext builds a CommandContext over a temp corpus directory with a
// JSON renderer, bypassing the cobra plumbing.
func testContext(t *testing.T, out *bytes.Buffer, maxFiles int) *CommandContext {
	t.Helper()

	dataDir := t.TempDir()
	enDir := filepath.Join(dataDir, "enwiki_namespace_0")
	require.NoError(t, os.MkdirAll(enDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(enDir, "chunk_0001.jsonl"),
		[]byte("{\"id\": 1, \"title\": \"a\"}\n{\"title\": \"b\"}\n"), 0o644))

	cfg := &config.Config{
		DataDir:      dataDir,
		Dataset:      "owner/slug",
		Languages:    []string{"en", "fr"},
		Namespace:    "wiki_namespace_0",
		MaxFiles:     maxFiles,
		OutputFormat: "json",
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Renderer: output.NewRenderer(out, out, output.ModeJSON),
	}
}

func TestLoadAndRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	cc := testContext(t, &buf, 1)

	c, err := loadCorpus(cc)
	require.NoError(t, err)
	require.NoError(t, renderLoad(cc, c))

	var out output.LoadOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	require.Len(t, out.Languages, 2)
	assert.Equal(t, "enwiki_namespace_0", out.Languages[0].Directory)
	assert.True(t, out.Languages[0].Present)
	assert.Equal(t, 1, out.Languages[0].Files)
	assert.Equal(t, 2, out.Languages[0].Records)
	assert.False(t, out.Languages[1].Present)
	assert.Equal(t, output.LoadSummary{Languages: 2, Files: 1, Records: 2}, out.Summary)
}

func TestAuditRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	cc := testContext(t, &buf, 0)

	c, err := loadCorpus(cc)
	require.NoError(t, err)
	require.NoError(t, renderAudit(cc, c))

	var out output.AuditOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, []string{"id", "title"}, out.AllKeys)
	assert.Equal(t, []string{"id"}, out.MissingKeys)
	assert.Equal(t, 2, out.Load.Records)
}

func TestAuditReport(t *testing.T) {
	c := corpus.Corpus{
		"enwiki_namespace_0": {
			"a.jsonl": {{"id": 1}, {"title": "x"}},
		},
	}
	allKeys, missingKeys := AuditReport(c)
	assert.Equal(t, []string{"id", "title"}, allKeys)
	assert.Equal(t, []string{"id", "title"}, missingKeys)
}

func TestExpectedFileCount(t *testing.T) {
	var buf bytes.Buffer
	cc := testContext(t, &buf, 1)

	// One file under the cap; the absent fr directory contributes nothing.
	assert.Equal(t, int64(1), expectedFileCount(cc.Cfg))

	cc.Cfg.MaxFiles = 0
	assert.Equal(t, int64(1), expectedFileCount(cc.Cfg))
}

func TestConfirmDownload(t *testing.T) {
	var out bytes.Buffer

	cc := testContext(t, &out, 1)
	cc.Cfg.AssumeYes = true
	cmd := NewRunCommand()
	cmd.SetOut(&out)
	assert.True(t, confirmDownload(cmd, cc), "assume_yes answers without prompting")

	cc.Cfg.AssumeYes = false
	cmd.SetIn(bytes.NewBufferString("y\n"))
	assert.True(t, confirmDownload(cmd, cc))

	cmd.SetIn(bytes.NewBufferString("n\n"))
	assert.False(t, confirmDownload(cmd, cc))

	cmd.SetIn(bytes.NewBufferString("\n"))
	assert.False(t, confirmDownload(cmd, cc), "default answer is no")
}

func TestRunInit(t *testing.T) {
	t.Cleanup(config.ResetConfig)
	dir := t.TempDir()

	cmd := NewInitCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{dir})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "corpusload.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "dataset: wikimedia-foundation/wikipedia-structured-contents")
	assert.Contains(t, string(data), "max_files: 1")

	// A second init without --force refuses to overwrite.
	cmd = NewInitCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{dir})
	err = cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
}
