//go:build integration

package testdb_test

import (
	"database/sql"
	"testing"

	"github.com/phrazzld/prepwise-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseURL_Precedence(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PREPWISE_TEST_DB_URL", "postgres://test@localhost/test")
	t.Setenv("PREPWISE_DATABASE_URL", "postgres://app@localhost/app")

	assert.Equal(t, "postgres://test@localhost/test", testdb.DatabaseURL())
	assert.False(t, testdb.ShouldSkipDatabaseTest())

	t.Setenv("PREPWISE_TEST_DB_URL", "")
	t.Setenv("PREPWISE_DATABASE_URL", "")
	assert.True(t, testdb.ShouldSkipDatabaseTest())
}

func TestWithTx_RollsBack(t *testing.T) {
	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		_, err := tx.Exec(`CREATE TABLE rollback_probe (id INT)`)
		require.NoError(t, err)
	})

	var exists bool
	err := db.QueryRow(`SELECT to_regclass('public.rollback_probe') IS NOT NULL`).Scan(&exists)
	require.NoError(t, err)
	assert.False(t, exists)
}
