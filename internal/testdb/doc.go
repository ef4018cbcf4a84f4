//go:build integration

// Package testdb provides helpers for database integration tests.
//
// Tests obtain a migrated connection with GetTestDB and run their work inside
// WithTx, which rolls the transaction back when the test finishes so tests can
// run in parallel against the same database:
//
//	func TestPlanStore(t *testing.T) {
//	    db := testdb.GetTestDB(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        store := postgres.NewPostgresPlanStore(tx, nil)
//	        // ...
//	    })
//	}
//
// GetTestDB skips the test when no database URL is configured.
package testdb
