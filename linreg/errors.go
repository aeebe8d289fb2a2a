package linreg

import (
	"errors"
)

var (
	ErrInsufficientData     = errors.New("fewer than two observations to fit")
	ErrInsufficientVariance = errors.New("no variance in x values")
	ErrZeroVariance         = errors.New("no variance in observed values")
	ErrNoObservations       = errors.New("no observations to score")
)
