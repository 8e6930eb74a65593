package dissect

import "errors"

var (
	// descriptor init errors

	ErrKeyDupe    = errors.New("duplicate key id")
	ErrKeyMissing = errors.New("missing mandatory key")
	ErrOffset     = errors.New("offset out of range")

	// dissection-time causes; nothing in this package returns them,
	// since Dissect reports failure as a bool

	ErrTruncated = errors.New("truncated frame")
	ErrMalformed = errors.New("malformed header")
)
