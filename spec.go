package argparser

import (
	"strings"

	"github.com/rivertolson/rustlibraries-argparser/cmdtokens"
)

// Flag describes a named, marker-prefixed option. Titles are case-insensitive
// and stored in lowercase. A flag with no option slots takes no value; a flag
// with one or more slots captures at most a single value per occurrence, the
// extra slots only show up in the usage text.
type Flag struct {
	title       string
	description string
	optionSlots []string
}

func NewFlag(title, description string, optionSlots ...string) Flag {
	slots := make([]string, len(optionSlots))
	copy(slots, optionSlots)
	return Flag{
		title:       strings.ToLower(title),
		description: description,
		optionSlots: slots,
	}
}

func (f Flag) Title() string {
	return f.title
}

func (f Flag) Description() string {
	return f.description
}

func (f Flag) OptionSlots() []string {
	slots := make([]string, len(f.optionSlots))
	copy(slots, f.optionSlots)
	return slots
}

func (f Flag) TakesOption() bool {
	return len(f.optionSlots) > 0
}

// Argument describes a named positional token. Titles are case-insensitive
// and stored in lowercase.
type Argument struct {
	title       string
	description string
}

func NewArgument(title, description string) Argument {
	return Argument{
		title:       strings.ToLower(title),
		description: description,
	}
}

func (a Argument) Title() string {
	return a.title
}

func (a Argument) Description() string {
	return a.description
}

// ParserSpec is an immutable description of the accepted flags and positional
// arguments. Build it once and share it freely: Parse never mutates it, so a
// single spec may serve concurrent calls.
//
// Flag titles must be pairwise distinct, same for argument titles. Violating
// this is a programming error and is not detected at parse time.
type ParserSpec struct {
	title       string
	description string
	flags       []Flag
	arguments   []Argument
}

func NewParserSpec(title, description string, flags []Flag, arguments []Argument) ParserSpec {
	return ParserSpec{
		title:       title,
		description: description,
		flags:       flags,
		arguments:   arguments,
	}
}

func (s ParserSpec) WithFlags(flags ...Flag) ParserSpec {
	s.flags = append(append([]Flag(nil), s.flags...), flags...)
	return s
}

func (s ParserSpec) WithArguments(arguments ...Argument) ParserSpec {
	s.arguments = append(append([]Argument(nil), s.arguments...), arguments...)
	return s
}

func (s ParserSpec) Title() string {
	return s.title
}

func (s ParserSpec) Description() string {
	return s.description
}

// Flags returns the declared flags in declaration order.
func (s ParserSpec) Flags() []Flag {
	return append([]Flag(nil), s.flags...)
}

// Arguments returns the declared positional arguments in declaration order.
func (s ParserSpec) Arguments() []Argument {
	return append([]Argument(nil), s.arguments...)
}

func (s ParserSpec) LookupFlag(title string) (Flag, bool) {
	title = strings.ToLower(title)
	for _, f := range s.flags {
		if f.title == title {
			return f, true
		}
	}
	return Flag{}, false
}

func (s ParserSpec) LookupArgument(title string) (Argument, bool) {
	title = strings.ToLower(title)
	for _, a := range s.arguments {
		if a.title == title {
			return a, true
		}
	}
	return Argument{}, false
}

func (s ParserSpec) formalFlagTitles() cmdtokens.FormalTitles {
	titles := make(cmdtokens.FormalTitles, len(s.flags))
	for _, f := range s.flags {
		titles[f.title] = f.TakesOption()
	}
	return titles
}
