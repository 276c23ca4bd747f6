package argparser

import "os"

// ParseCommandLine parses the process arguments following the program path.
// See Parse.
func (s ParserSpec) ParseCommandLine() (ParseResult, error) {
	return s.Parse(os.Args[1:])
}
