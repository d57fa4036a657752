package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("entity has different owner")
	ErrValidation       = errors.New("validation error")
	ErrOwnerNotFound    = errors.New("referenced owner doesn't exist")

	ErrLocationNotFound = errors.New("location doesn't exist")
	ErrDeviceNotFound   = errors.New("device doesn't exist")
	ErrRoomNotFound     = errors.New("room doesn't exist")
	ErrBillNotFound     = errors.New("bill doesn't exist")

	ErrGoalNotFound      = errors.New("goal isn't active")
	ErrGoalStateNotFound = errors.New("goal state doesn't exist")
	ErrGoalCompleted     = errors.New("goal already completed")

	ErrAchievementStateNotFound = errors.New("achievement state doesn't exist")

	// ErrStateConflict signals a lost compare-and-swap on a versioned row.
	// Callers reload and retry.
	ErrStateConflict = errors.New("state version conflict")
)
