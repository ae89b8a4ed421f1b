package view

import "errors"

var (
	// ErrUnknownScreen indicates a navigation target that is not a named screen.
	ErrUnknownScreen = errors.New("unknown screen")
	// ErrInvalidDelays indicates transition delays that break the overlay contract.
	ErrInvalidDelays = errors.New("reveal delay must be greater than cover delay")
)
