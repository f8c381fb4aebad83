// Package favorites persists the per-recipe saved flag in SQLite.
//
// The store is a flat key/value table keyed by recipe id. Writes are durable
// and immediately visible to subsequent reads; ids never written read as
// false. The store assumes a single writer, and Open enforces that with a
// file lock next to the database.
package favorites
