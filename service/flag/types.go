package flag

import (
	"errors"

	"github.com/elC0mpa/flow-doctor/model"
)

// ErrHelpRequested is returned when the command only printed its usage.
var ErrHelpRequested = errors.New("help requested")

type service struct{}

type FlagService interface {
	GetParsedFlags(args []string) (model.Flags, error)
}
