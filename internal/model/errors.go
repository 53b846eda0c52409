package model

import "errors"

// Common errors used across the application
var (
	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// Event errors
	ErrEventNotFound     = errors.New("event not found")
	ErrEventCompleted    = errors.New("event is completed")
	ErrEventNotCompleted = errors.New("event is not completed")
	ErrNotOwner          = errors.New("not the event owner")
	ErrGolferNotFound    = errors.New("golfer not found in event")
	ErrDuplicateGolfer   = errors.New("golfer already in event")
	ErrInvalidGolfer     = errors.New("golfer needs a profile or a custom name")
	ErrInvalidHole       = errors.New("invalid hole number")
	ErrInvalidStrokes    = errors.New("strokes must be positive")
	ErrGameNotFound      = errors.New("game not found in event")

	// Settlement errors
	ErrSettlementNotFound   = errors.New("settlement not found")
	ErrSettlementNotPending = errors.New("settlement is not pending")
	ErrSelfSettlement       = errors.New("settlement parties must differ")
	ErrInvalidPaidMethod    = errors.New("invalid payment method")
)
