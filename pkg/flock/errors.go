package flock

import "errors"

var (
	// ErrAllocation is returned when the requested population cannot be
	// materialised. Nothing is allocated when it is returned.
	ErrAllocation = errors.New("flock: population cannot be allocated")

	// ErrInvalidDomain is returned for a bounds rectangle with zero or
	// negative extent on some axis.
	ErrInvalidDomain = errors.New("flock: bounds rectangle is degenerate")

	// ErrInvalidParams is returned when a bird would get a non positive
	// sight radius.
	ErrInvalidParams = errors.New("flock: invalid parameters")
)
