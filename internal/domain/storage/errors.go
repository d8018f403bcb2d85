package storage

import "errors"

// ErrDuplicateKey is returned by repository Create/Update implementations when
// a unique natural key is violated. The database constraint is authoritative;
// any service-level existence pre-check is advisory only.
var ErrDuplicateKey = errors.New("duplicate key")
