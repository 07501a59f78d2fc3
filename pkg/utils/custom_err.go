package utils

import "errors"

var (
	ErrDatabaseError = errors.New("database error")
	ErrInvalidInput  = errors.New("invalid input")

	// accounts
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email or username already exists")

	// catalog
	ErrPlanNotFound           = errors.New("workout plan not found")
	ErrForbidden              = errors.New("forbidden")
	ErrDuplicateExerciseOrder = errors.New("exercise order must be unique within a workout")
	ErrStorageUnavailable     = errors.New("object storage unavailable")

	// sessions
	ErrSessionNotFound     = errors.New("workout session not found")
	ErrSessionAccessDenied = errors.New("workout session belongs to another user")
	ErrSessionCompleted    = errors.New("workout session already completed")
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrExerciseNotInPlan   = errors.New("exercise does not belong to the session workout")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)
