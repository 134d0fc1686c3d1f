package repository

import "errors"

var (
	ErrDatabaseConnection = errors.New("database connection error")
	ErrInvalidTaskData    = errors.New("invalid task data")
	ErrInvalidAlertData   = errors.New("invalid alert data")
)
