package argparser

import (
	"errors"
	"fmt"
)

// ErrHelp is returned when the built-in "-h" flag is supplied. It is a
// terminal outcome, not a validation failure: the caller is expected to
// display the usage text and stop with a zero status.
var ErrHelp = errors.New("help requested")

var ErrUnknownFlag = errors.New("unknown flag")
var ErrDuplicateFlag = errors.New("flag may only be used once")
var ErrUnknownArgument = errors.New("unknown argument")
var ErrDuplicateArgument = errors.New("argument may only be used once")
var ErrNoOptionExpected = errors.New("flag does not take an option value")

// ParseError is the error type returned by Parse. Err is one of the sentinel
// errors above (use errors.Is to distinguish them), Token is the offending
// raw token and Usage always carries the rendered usage text so the caller
// can display it without consulting the spec again.
type ParseError struct {
	Err   error
	Token string
	Usage string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
