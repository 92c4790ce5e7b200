// Package files persists File records in the files collection.
//
// Records are keyed by id and indexed by owner (the by_owner index created by
// the initial migration), so GetByOwner is an index equality scan. The
// repository works over a dbx.DBTX, so it runs the same against *sql.DB and
// inside a transaction opened by the store.
package files
