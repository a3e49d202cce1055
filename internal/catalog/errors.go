package catalog

import "errors"

var (
	// ErrUnavailable reports that a backing data file is unreachable or
	// malformed. It is surfaced to callers as a hard error: silently
	// returning an empty catalog would corrupt downstream synthesis.
	ErrUnavailable = errors.New("catalog unavailable")

	// ErrCareerNotFound reports that no career with the requested name
	// exists in the loaded collection.
	ErrCareerNotFound = errors.New("career not found")
)
