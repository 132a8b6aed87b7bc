package puzzle

import (
	"errors"
	"fmt"
)

// ParseErrorCode classifies failures of the level text format.
type ParseErrorCode string

const (
	ErrSizeMissing       ParseErrorCode = "SIZE_MISSING"
	ErrSizeInvalid       ParseErrorCode = "SIZE_INVALID"
	ErrTileCountMismatch ParseErrorCode = "TILE_COUNT_MISMATCH"
	ErrInvalidTileCode   ParseErrorCode = "INVALID_TILE_CODE"
	ErrCapacityOverflow  ParseErrorCode = "CAPACITY_OVERFLOW"
)

// ParseError describes why a level text or tile code was rejected. It is
// always surfaced to the caller: a malformed level must block the host from
// starting a broken session.
type ParseError struct {
	Code    ParseErrorCode
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ErrIndexOutOfRange reports explicit cell addressing beyond the current
// grid bounds. It marks a violated precondition: callers are expected to
// validate against Height()/Width() first.
var ErrIndexOutOfRange = errors.New("index out of range")
