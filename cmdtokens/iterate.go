package cmdtokens

import (
	"strings"
)

const helpFlagTitle = "h"

type Args struct {
	Args       []string
	knownFlags FormalTitles
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

func (args Args) WithKnownFlags(knownFlags FormalTitles) Args {
	args.knownFlags = args.knownFlags.Clone()
	for title, takesOption := range knownFlags {
		args.knownFlags[title] = takesOption
	}
	return args
}

// Iterate classifies args left to right in a single pass and calls yield for
// each resulting Token. A flag token whose title is known to take an option
// value makes the next token a RoleOptionValue token, unless the next token
// starts with the flag marker: in that case it is reclassified as a fresh
// flag token and the caller is expected to close the pending flag itself.
// Returning false from yield stops the iteration.
func (args Args) Iterate(yield func(token Token) bool) {
	expectOption := false

	for _, arg := range args.Args {
		if expectOption {
			expectOption = false
			if !strings.HasPrefix(arg, "-") {
				if !yield(Token{
					Arg:    arg,
					Option: strings.ToLower(arg),
					Role:   RoleOptionValue,
				}) {
					return
				}
				continue
			}
		}

		title, isFlag := parseArg(arg)

		if !isFlag {
			if !yield(Token{
				Arg:  arg,
				Role: RolePositional,
			}) {
				return
			}
			continue
		}

		token := Token{
			Arg:       arg,
			FlagTitle: title,
			Role:      RoleFlag,
		}
		takesOption, isKnown := args.knownFlags[title]
		if isKnown {
			token.Role |= RoleKnown
		}
		if title == helpFlagTitle {
			token.Role |= RoleHelp
		}

		if !yield(token) {
			return
		}
		expectOption = isKnown && takesOption
	}
}

// parseArg reports whether arg is a flag token and returns its case-folded
// title. A bare "-" is not a flag.
func parseArg(arg string) (title string, isFlag bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false
	}
	return strings.ToLower(arg[1:]), true
}
