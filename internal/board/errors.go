package board

import "errors"

var (
	// ErrInvalidSource is returned when the chosen card cannot start a move
	ErrInvalidSource = errors.New("invalid source")
	// ErrInvalidDestination is returned when the target is not a legal destination of the selection
	ErrInvalidDestination = errors.New("invalid destination")
	// ErrInvalidStateTransition is returned when an operation does not apply to the current state
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrStockAndWasteBusy is returned when drawing while a card is selected
	ErrStockAndWasteBusy = errors.New("stock and waste busy")
	// ErrInvalidLayout is returned by New for layouts that break a board invariant
	ErrInvalidLayout = errors.New("invalid layout")
)
