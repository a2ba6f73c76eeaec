package tweet

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a tweet error. Values are stable; custom codes start at 6000.
type ErrorCode uint32

const (
	ErrorCodeTopicTooLong ErrorCode = 6000 + iota
	ErrorCodeContentTooLong
	ErrorCodeClockUnavailable
)

// Error is a typed creation failure. Two Errors match under errors.Is when
// their codes are equal, so wrapped instances still match the sentinels.
type Error struct {
	code ErrorCode
	msg  string
	orig error
}

var (
	ErrTopicTooLong     = &Error{code: ErrorCodeTopicTooLong, msg: "topic should be 50 characters maximum"}
	ErrContentTooLong   = &Error{code: ErrorCodeContentTooLong, msg: "content should be 280 characters maximum"}
	ErrClockUnavailable = &Error{code: ErrorCodeClockUnavailable, msg: "clock unavailable"}
)

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Code returns the stable error code.
func (e *Error) Code() ErrorCode { return e.code }

func (e *Error) Unwrap() error { return e.orig }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

func (e *Error) wrap(err error) *Error {
	return &Error{code: e.code, msg: e.msg, orig: err}
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.code, true
	}
	return 0, false
}
