package services

import "errors"

var (
	// ErrNoSnapshot is returned when no refresh has completed yet.
	ErrNoSnapshot = errors.New("snapshot not found")

	// ErrRefreshInProgress is returned when a refresh is already running.
	ErrRefreshInProgress = errors.New("snapshot refresh is already running")
)
