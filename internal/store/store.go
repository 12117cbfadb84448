// Package store provides database access methods for all AtelierCMS
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import "errors"

// ErrNotFound is returned by update and delete methods when no row
// matched the given identifier.
var ErrNotFound = errors.New("store: not found")
