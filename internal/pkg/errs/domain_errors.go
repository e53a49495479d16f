package errs

import "errors"

// Sentinel errors for shared pkg-level concerns; domain packages own their
// own sentinels (e.g. pricing.ErrInvalidDateRange).
var (
	ErrMalformedDate  = errors.New("malformed date string")
	ErrInvalidPolygon = errors.New("invalid polygon geometry")
)
