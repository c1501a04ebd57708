package internal

import "errors"

var (
	// ErrInvalidArgument marks a request the aggregator refuses to run,
	// such as a negative N or an unknown aggregation operator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSourceUnavailable marks a record source that could not be queried.
	// Propagated to the caller as-is; there is no retry at this layer.
	ErrSourceUnavailable = errors.New("record source unavailable")
)
