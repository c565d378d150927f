package analyzing

import "errors"

var (
	ErrUnknownMetric   = errors.New("unknown metric")
	ErrMissingSnapshot = errors.New("missing snapshot")
)
