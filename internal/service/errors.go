package service

import "errors"

var (
	ErrNoFiles              = errors.New("Please select a file.")
	ErrNoPlatforms          = errors.New("Please select a platform.")
	ErrPlatformNotConnected = errors.New("Please connect this platform first!")
	ErrUnknownPlatform      = errors.New("Unknown platform")
	ErrPostInFlight         = errors.New("A post is already in progress")
	ErrEmptyHistory         = errors.New("No history to export.")
	ErrConfirmationRequired = errors.New("Clearing history requires confirmation")
	ErrWorkspaceNotFound    = errors.New("workspace not found")
)
