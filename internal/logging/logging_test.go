package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceWritesJSONOnlyWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("list.move", map[string]interface{}{"pane": "categories"})
	assert.Zero(t, buf.Len())

	SetTraceEnabled(true)
	Trace("list.move", map[string]interface{}{"pane": "categories", "highlight": 3})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "list.move", entry["event"])
	assert.Equal(t, "categories", entry["pane"])
	assert.EqualValues(t, 3, entry["highlight"])
}

func TestErrorWritesToConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sbbrowse.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(errors.New("boom"))
	Error(nil)
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"error":"boom"`)
}
