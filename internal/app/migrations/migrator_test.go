package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notify_record_change runs inside every write to a monitored table.
// Pin the guards that keep a notify problem from aborting the write.
func TestInitSchemaNotifyTriggerGuards(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	schema := string(content)

	t.Run("oversized payloads collapse to id-only", func(t *testing.T) {
		assert.Contains(t, schema, "octet_length(payload) >= 8000")
		assert.Contains(t, schema, "json_build_object('id', rec.id)")
	})

	t.Run("notify errors are swallowed", func(t *testing.T) {
		assert.Contains(t, schema, "PERFORM pg_notify('record_changes', payload);")
		assert.Contains(t, schema, "EXCEPTION WHEN OTHERS THEN")
	})
}
