// Package store is the storage engine of the vault.
//
// # Overview
//
// Engine owns three collections in an embedded SQLite database:
//
//   - users     keyed by email
//   - files     keyed by id, with the non-unique by_owner index on owner
//   - metadata  small key/value settings (the session identity)
//
// The schema is created and versioned by goose migrations embedded in
// internal/vault/migrations. Callers never see the *sql.DB: every access
// goes through an Engine method, and every single-record method runs in its
// own transaction so a collection and its index never expose a half-applied
// write.
//
// # Initialization
//
// The database is opened lazily by the first operation that needs it.
// Concurrent first calls share one in-flight attempt and receive the same
// *Handle. A failed attempt is reported as common.ErrStoreUnavailable and is
// not cached; the next call tries again.
//
// # Errors
//
//   - common.ErrStoreUnavailable  the database cannot be opened or migrated
//   - common.ErrDuplicateKey      AddUser with an existing email
//   - common.ErrSizeMismatch      PutFile with Size != len(Payload)
//   - *PartialDeleteError         ClearFilesByOwner stopped partway
//
// Any other driver error is wrapped and returned unchanged in meaning; the
// engine never retries.
package store
