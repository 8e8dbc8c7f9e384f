// Package persistence provides the GORM repository implementations for
// Postgres and SQLite, plus connection, migration and pagination helpers.
package persistence
