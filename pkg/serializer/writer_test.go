package serializer

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/modelver/modelver/pkg/version"
)

type record struct {
	Name    string   `json:"name" yaml:"name"`
	Count   int      `json:"count" yaml:"count"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Details struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"details" yaml:"details"`
}

func sample() record {
	r := record{Name: "model", Count: 3, Tags: []string{"a", "b"}}
	r.Details.Enabled = true
	return r
}

func TestSerializeJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatJSON, buf)

	require.NoError(t, w.Serialize(t.Context(), sample()))

	var got record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample(), got)
}

func TestSerializeYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatYAML, buf)

	require.NoError(t, w.Serialize(t.Context(), sample()))

	var got record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample(), got)
}

func TestSerializeTable(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatTable, buf)

	require.NoError(t, w.Serialize(t.Context(), sample()))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "model")
	assert.Contains(t, out, "Details.Enabled")
	assert.Contains(t, out, "Tags.[0]")
}

func TestSerializeTableEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatTable, buf)

	require.NoError(t, w.Serialize(t.Context(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestSerializeTableStringer(t *testing.T) {
	// Versions must render as their canonical string, not field by field.
	buf := &bytes.Buffer{}
	w := NewWriter(FormatTable, buf)

	require.NoError(t, w.Serialize(t.Context(), []version.Version{
		version.MustParse("1.0.0"),
		version.MustParse("2.0.0-rc.1"),
	}))

	out := buf.String()
	assert.Contains(t, out, "1.0.0")
	assert.Contains(t, out, "2.0.0-rc.1")
	assert.NotContains(t, out, "Major")
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, FormatTable.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestNewWriterDefaults(t *testing.T) {
	w := NewWriter(Format("bogus"), &bytes.Buffer{})
	assert.Equal(t, FormatJSON, w.format)

	w = NewWriter(FormatYAML, nil)
	assert.Equal(t, os.Stdout, w.output)
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewFileWriterOrStdout(FormatJSON, path)

	require.NoError(t, w.Serialize(t.Context(), sample()))
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), `"model"`))

	// Empty path falls back to stdout; Close is a no-op.
	w = NewFileWriterOrStdout(FormatJSON, "  ")
	assert.Equal(t, os.Stdout, w.output)
	require.NoError(t, w.Close())
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, 201, map[string]string{"version": "1.0.0"})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.0.0"}`, rec.Body.String())
}
