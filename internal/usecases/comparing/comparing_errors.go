package comparing

import "errors"

var ErrMissingChannelIdentifier = errors.New("pivot and target channel identifiers are required")
