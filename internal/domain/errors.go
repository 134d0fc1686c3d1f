package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPlanNotFound    = errors.New("study plan not found")
	ErrTopicNotFound   = errors.New("topic not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrAlertNotFound   = errors.New("alert not found")
	ErrInvalidTask     = errors.New("invalid task")
	ErrInvalidAlert    = errors.New("invalid alert")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrSummaryNotFound = errors.New("run summary not found")
)

// IsNotFound reports whether err refers to a missing user, plan, topic, task or alert.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPlanNotFound) ||
		errors.Is(err, ErrTopicNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrAlertNotFound) ||
		errors.Is(err, ErrSummaryNotFound)
}

// IsValidation reports whether err was caused by rejected input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidTask) ||
		errors.Is(err, ErrInvalidAlert)
}
