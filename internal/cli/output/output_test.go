package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	var buf bytes.Buffer

	// Explicit modes pass through.
	assert.Equal(t, ModeJSON, NewRenderer(&buf, &buf, ModeJSON).EffectiveMode())
	assert.Equal(t, ModeText, NewRenderer(&buf, &buf, ModeText).EffectiveMode())

	// Auto resolves to markdown for a non-TTY writer.
	assert.Equal(t, ModeMarkdown, NewRenderer(&buf, &buf, ModeAuto).EffectiveMode())

	// Unknown modes fall back to auto.
	assert.Equal(t, ModeMarkdown, NewRenderer(&buf, &buf, Mode("bogus")).EffectiveMode())
}

func TestHeaderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeMarkdown)
	r.Header(2, "Keys")
	assert.Equal(t, "## Keys\n", buf.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
	assert.Equal(t, "###### Deep", FormatHeader(9, "Deep"))
	assert.Equal(t, "**Files**: 3", FormatKeyValue("Files", "3"))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeJSON)
	require.NoError(t, r.JSON(AuditOutput{
		AllKeys:     []string{"id"},
		MissingKeys: []string{},
	}))

	var decoded AuditOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"id"}, decoded.AllKeys)
	assert.Empty(t, decoded.MissingKeys)
}

func TestProgressNoopOutsideText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeJSON)

	p := r.NewProgress("loading", 10, false)
	p.Increment(5)
	p.SetValue(10)
	p.Done()

	assert.Empty(t, buf.String())
}
