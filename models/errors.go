package models

import "errors"

// Every error below is recoverable: the caller reports it and asks again.
var (
	ErrMalformedCoordinate  = errors.New("malformed coordinate")
	ErrOutOfRangeCoordinate = errors.New("coordinate out of range")
	ErrInvalidOrientation   = errors.New("invalid orientation")
	ErrIllegalPlacement     = errors.New("illegal placement")
	ErrDuplicateShot        = errors.New("location already fired at")
	ErrInvalidFleetSize     = errors.New("invalid fleet size")
)
