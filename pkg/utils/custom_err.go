package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidDateRange  = errors.New("start date must be before end date")
	ErrTripNotFound      = errors.New("trip not found")
	ErrOracleUnavailable = errors.New("suggestion service unavailable")
	ErrOracleMalformed   = errors.New("suggestion service returned malformed output")
	ErrDatabaseError     = errors.New("database error")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
)
