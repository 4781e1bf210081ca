package store

import "errors"

// ErrNotFound is returned by Load when no value exists for the key.
var ErrNotFound = errors.New("store: key not found")

// Store persists whole JSON-serializable values keyed by string. One key per
// entity collection plus one for the current-session user pointer. There are
// no transactions; callers serialize their own read-modify-write cycles.
type Store interface {
	Load(key string, dest interface{}) error
	Save(key string, value interface{}) error
}
