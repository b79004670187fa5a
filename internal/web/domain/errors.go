package domain

import "errors"

// ErrListingNotFound is returned when no listing row matches the requested id
var ErrListingNotFound = errors.New("listing not found")
