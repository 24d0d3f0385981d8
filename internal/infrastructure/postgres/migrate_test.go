package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_OrdenadasYEmbebidas(t *testing.T) {
	files, err := migrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_init.sql", files[0])
	assert.IsIncreasing(t, files)
}

func TestMigrationInit_CubreTablasDeLosRepos(t *testing.T) {
	body, err := migrationFS.ReadFile("migrations/001_init.sql")
	require.NoError(t, err)
	sql := string(body)
	for _, table := range []string{
		"users", "suppliers", "commission_rules", "products", "clients",
		"sales", "sale_items", "sale_installments",
	} {
		assert.True(t, strings.Contains(sql, "CREATE TABLE IF NOT EXISTS "+table+" ("), table)
	}
}
