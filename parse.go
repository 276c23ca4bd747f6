package argparser

import (
	"strings"

	"github.com/rivertolson/rustlibraries-argparser/cmdtokens"
)

// Parse classifies and validates arguments against the spec. The slice must
// not contain the program path itself. On the first problem it stops and
// returns a *ParseError; no partial result survives a failure.
//
// A flag whose title declares option slots captures the next token as its
// option value unless that token starts with "-", in which case the flag is
// recorded with an empty option value and the token is classified anew.
// A flag that is still pending when the input ends is recorded with an empty
// option value as well, so every supplied flag appears in the result.
func (s ParserSpec) Parse(arguments []string) (ParseResult, error) {
	var res ParseResult
	var parseErr *ParseError

	// pending is the title of a flag awaiting its option value,
	// lastBare is the title of a flag without option slots recorded by the
	// directly preceding token
	pending := ""
	lastBare := ""
	usedFlags := make(map[string]struct{}, len(s.flags))
	usedArguments := make(map[string]struct{}, len(s.arguments))

	fail := func(kind error, token string) bool {
		parseErr = &ParseError{
			Err:   kind,
			Token: token,
			Usage: s.Usage(),
		}
		return false
	}

	cmdtokens.NewArgs(arguments).
		WithKnownFlags(s.formalFlagTitles()).
		Iterate(func(token cmdtokens.Token) bool {
			switch {
			case token.Role.Has(cmdtokens.RoleFlag):
				if pending != "" {
					res.Flags = append(res.Flags, FlagValue{Title: pending})
					pending = ""
				}
				lastBare = ""
				if _, used := usedFlags[token.FlagTitle]; used {
					return fail(ErrDuplicateFlag, token.Arg)
				}
				if token.Role.Has(cmdtokens.RoleKnown) {
					flag, _ := s.LookupFlag(token.FlagTitle)
					usedFlags[token.FlagTitle] = struct{}{}
					if flag.TakesOption() {
						pending = token.FlagTitle
					} else {
						res.Flags = append(res.Flags, FlagValue{Title: token.FlagTitle})
						lastBare = token.FlagTitle
					}
					return true
				}
				if token.Role.Has(cmdtokens.RoleHelp) {
					return fail(ErrHelp, token.Arg)
				}
				return fail(ErrUnknownFlag, token.Arg)

			case token.Role.Has(cmdtokens.RoleOptionValue):
				res.Flags = append(res.Flags, FlagValue{
					Title:  pending,
					Option: token.Option,
				})
				pending = ""
				return true

			default: // cmdtokens.RolePositional
				followsBareFlag := lastBare != ""
				lastBare = ""
				title := strings.ToLower(token.Arg)
				if _, used := usedArguments[title]; used {
					return fail(ErrDuplicateArgument, token.Arg)
				}
				argument, declared := s.LookupArgument(title)
				if !declared {
					if followsBareFlag {
						return fail(ErrNoOptionExpected, token.Arg)
					}
					return fail(ErrUnknownArgument, token.Arg)
				}
				usedArguments[title] = struct{}{}
				res.Arguments = append(res.Arguments, argument.Title())
				return true
			}
		})

	if parseErr != nil {
		return ParseResult{}, parseErr
	}
	if pending != "" {
		res.Flags = append(res.Flags, FlagValue{Title: pending})
	}
	return res, nil
}
