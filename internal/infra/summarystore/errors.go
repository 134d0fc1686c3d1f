package summarystore

import "errors"

var (
	ErrInvalidSummaryData = errors.New("invalid run summary data")
)
