// Package sqlite provides the SQLite-backed check history.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
//   - ReportStore: Check runs with their reports
//
// # Schema
//
// The database schema is managed through versioned migrations embedded from
// the migrations/ directory. Files are named NNN_name.up.sql and applied in
// order; applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.docstyle/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode, so a batch check can record runs from several workers.
package sqlite
