package app

import (
	"errors"
	"fmt"

	"github.com/wojtekolesinski/battleship-cli/models"
)

const (
	coordinatesPrompt = "Enter the coordinates (e.g., A5): "
	orientationPrompt = "Enter orientation (H for Horizontal, V for Vertical): "
)

// retryMessage turns a rejected input into the line shown before asking
// again.
func (a *App) retryMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrCoordinateTooShort):
		return "Invalid input. Try again."
	case errors.Is(err, models.ErrMalformedCoordinate), errors.Is(err, models.ErrOutOfRangeCoordinate):
		return "Invalid coordinates. Try again."
	case errors.Is(err, models.ErrInvalidOrientation):
		return "Invalid orientation. Try again."
	case errors.Is(err, models.ErrIllegalPlacement):
		return "Invalid placement. Try again."
	case errors.Is(err, models.ErrDuplicateShot):
		return "You've already fired at this location. Try again."
	case errors.Is(err, models.ErrInvalidFleetSize):
		return fmt.Sprintf("Invalid number of ships. Please enter a value between %d and %d.",
			a.rules.MinFleet(), a.rules.MaxFleet())
	}
	return "Try again."
}
