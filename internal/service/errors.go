package service

import "errors"

// Sentinel errors surfaced to handlers. Anything else bubbling out of a
// service is a storage failure and maps to a 500.
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidID        = errors.New("invalid identifier")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidEventType = errors.New("invalid event type")
	ErrReportNotFound   = errors.New("recount report not found")
)
