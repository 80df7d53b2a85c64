package storage

import "errors"

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned when a create would overwrite an existing record.
var ErrAlreadyExists = errors.New("record already exists")

// ErrVersionConflict is returned when a subscription changed between read and write.
// Callers are expected to re-read and retry.
var ErrVersionConflict = errors.New("subscription version conflict")

// ErrStatusConflict is returned when a claim is no longer in the status the update expected.
var ErrStatusConflict = errors.New("claim status changed concurrently")

// ErrDuplicateEntry is returned when a ledger entry with the same id was already posted.
var ErrDuplicateEntry = errors.New("ledger entry already posted")
