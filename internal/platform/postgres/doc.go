// Package postgres provides the PostgreSQL implementation of the store
// interfaces, the connection helper used by the server and the CLI, and the
// goose migrations that define the schema. Migrations are embedded in the
// binary so the migrate command needs no files on disk.
package postgres
