package freightevents

import "errors"

var (
	ErrUndefinedStatus = errors.New("undefined freight status")
)
