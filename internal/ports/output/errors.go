package output

import "errors"

// Repository errors, independent of the backing store.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
