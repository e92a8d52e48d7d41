package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrdersEmbeddedMigrations(t *testing.T) {
	migrations, err := Load()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, "0001_core", migrations[0].Version)
	assert.Equal(t, "0002_notification_outbox", migrations[1].Version)
	assert.True(t, strings.Contains(migrations[0].SQL, "CREATE TABLE IF NOT EXISTS agent_interest"))
	assert.True(t, strings.Contains(migrations[1].SQL, "pg_notify('notification_outbox_events'"))
}
