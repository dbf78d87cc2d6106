package choice

import "errors"

var (
	// ErrEmptyRouteSet is returned when Compute is called with no routes.
	ErrEmptyRouteSet = errors.New("choice: route set is empty")

	// ErrInvalidCutoffProb is returned when Config.CutoffProb falls
	// outside [0.5, 1.0], spec.md §4's defined domain for the
	// binary-logit cutoff parameter.
	ErrInvalidCutoffProb = errors.New("choice: cutoff probability must be in [0.5, 1.0]")

	// ErrInvalidBeta is returned when Config.Beta is negative.
	ErrInvalidBeta = errors.New("choice: beta must be non-negative")
)
