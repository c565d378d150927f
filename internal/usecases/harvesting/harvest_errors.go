package harvesting

import (
	"errors"
	"fmt"
)

var (
	ErrChannelResolution = errors.New("channel could not be resolved")
	ErrEmptyChannelID    = errors.New("empty channel identifier")
)

// ChannelResolutionError é o único erro que interrompe uma coleta: a página do
// canal não abriu ou o consentimento não pôde ser confirmado
type ChannelResolutionError struct {
	ChannelID string
	Step      Step
	Err       error
}

func (e *ChannelResolutionError) Error() string {
	return fmt.Sprintf("%s: channel %q at step %s: %v", ErrChannelResolution, e.ChannelID, e.Step, e.Err)
}

func (e *ChannelResolutionError) Unwrap() []error {
	return []error{ErrChannelResolution, e.Err}
}
