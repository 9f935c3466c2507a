package database

import "errors"

// ErrNotFound is returned when a record id or email has no match. The old
// code silently ignored unknown ids on update/delete; surfacing the miss is
// a deliberate strictness upgrade, and the HTTP delete handler still treats
// a missing id as success so idempotent deletes keep working.
var ErrNotFound = errors.New("record not found")
