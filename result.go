package argparser

import "strings"

// FlagValue is a single recorded flag occurrence. Option is empty when the
// flag takes no value or none was supplied before the next token.
type FlagValue struct {
	Title  string
	Option string
}

// ParseResult is the outcome of a successful Parse call. Flags are listed in
// the order their occurrences were completed, Arguments hold the declared
// titles of the recognized positional arguments in input order. The result
// is owned by the caller; parse calls never share state through it.
type ParseResult struct {
	Flags     []FlagValue
	Arguments []string
}

func (r ParseResult) LookupFlag(title string) (res FlagValue, has bool) {
	title = strings.ToLower(title)
	for _, f := range r.Flags {
		if f.Title == title {
			return f, true
		}
	}
	return FlagValue{}, false
}

func (r ParseResult) HasArgument(title string) bool {
	title = strings.ToLower(title)
	for _, a := range r.Arguments {
		if a == title {
			return true
		}
	}
	return false
}
