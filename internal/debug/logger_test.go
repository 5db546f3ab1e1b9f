package debug_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplib/comfort/internal/debug"
)

func TestDisabledByDefault(t *testing.T) {
	debug.Init(false)
	assert.False(t, debug.Enabled())

	// Events on a disabled logger are nil and safe to use.
	debug.Debug().Str("sql", "SELECT 1").Msg("ignored")
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	t.Cleanup(func() { debug.Init(false) })

	assert.True(t, debug.Enabled())
	debug.Debug().Str("op", "exec").Str("sql", "DELETE FROM t").Msg("statement")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "exec", entry["op"])
	assert.Equal(t, "DELETE FROM t", entry["sql"])
	assert.Equal(t, "statement", entry["message"])
}
