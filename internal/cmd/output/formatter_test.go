package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/rmbrowse/internal/cmd/table"
)

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormat_Explicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestFormatters(t *testing.T) {
	data := table.Data{
		Headers: []string{"ID", "Name"},
		Rows:    [][]string{{"1", "Rick Sanchez"}},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))
		assert.Contains(t, buf.String(), "Rick Sanchez")
		assert.Contains(t, strings.ToUpper(buf.String()), "NAME")
	})

	t.Run("sections", func(t *testing.T) {
		var buf bytes.Buffer
		sections := []Section{{Title: "characters", Data: data}, {Title: "episodes"}}
		require.NoError(t, NewFormatter(FormatTable).Format(&buf, sections))
		assert.Contains(t, buf.String(), "Characters:")
		assert.Contains(t, buf.String(), "Episodes:\n  (none)")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatJSON).Format(&buf, map[string]int{"id": 1}))
		assert.JSONEq(t, `{"id":1}`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatYAML).Format(&buf, map[string]int{"id": 1}))
		assert.Equal(t, "id: 1\n", buf.String())
	})
}

func TestWrite(t *testing.T) {
	rows := func(wide bool) any {
		if wide {
			return table.Data{Headers: []string{"ID", "Extra"}, Rows: [][]string{{"1", "x"}}}
		}
		return table.Data{Headers: []string{"ID"}, Rows: [][]string{{"1"}}}
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatWide, rows, nil))
	assert.Contains(t, strings.ToUpper(buf.String()), "EXTRA")

	buf.Reset()
	require.NoError(t, Write(&buf, FormatJSON, rows, []int{1}))
	assert.JSONEq(t, `[1]`, buf.String())
}
