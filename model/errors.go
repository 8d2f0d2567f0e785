package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is created with a non-positive width or height
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrShapeMismatch is returned when the initial colors do not cover the grid exactly
	ErrShapeMismatch = errors.New("initial colors do not match grid shape")
	// ErrOutOfRange is returned for coordinates outside [0,W)x[0,H)
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidColor is returned when a value is not one of the five cell colors
	ErrInvalidColor = errors.New("invalid color")
)
