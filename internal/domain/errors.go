package domain

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrTooFewRecords = errors.New("too few records for advice")
)
