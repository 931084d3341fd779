package types

import "errors"

// Standard errors returned across package boundaries. Callers match these
// with errors.Is; lower-level causes are wrapped, never propagated raw.
var (
	// ErrNotFound means an identifier has no matching rows. Query paths
	// surface this as an empty result; only direct lookups return it.
	ErrNotFound = errors.New("not found")

	// ErrInvalidIdentifier means a mutation was requested on a contact
	// without a usable store-assigned identifier.
	ErrInvalidIdentifier = errors.New("contact has no valid identifier")

	// ErrStoreFailure means the underlying store query or batch apply
	// failed. The store's atomicity guarantees no partial writes occurred.
	ErrStoreFailure = errors.New("store operation failed")

	// ErrDecodeFailure means photo bytes could not be decoded as an image.
	ErrDecodeFailure = errors.New("photo decode failed")

	// ErrQueueFull means the request queue is saturated and the request
	// was rejected without being run.
	ErrQueueFull = errors.New("request queue full")

	// ErrBadOperation means a mutation batch is malformed, for example a
	// back-reference pointing at a later or non-insert operation.
	ErrBadOperation = errors.New("malformed batch operation")
)
