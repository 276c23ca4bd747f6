package argparser

import "strings"

// Usage renders the spec into the usage text: a title/description banner,
// an " Options:" block when flags are declared and an " Arguments:" block
// when positional arguments are declared, both in declaration order. The
// output is deterministic: equal specs render byte-identical text.
func (s ParserSpec) Usage() string {
	var b strings.Builder

	b.WriteString(s.title)
	b.WriteString(", ")
	b.WriteString(s.description)
	b.WriteString("\nUsage: -h for help:\n\n")

	if len(s.flags) > 0 {
		b.WriteString(" Options:\n")
		for _, f := range s.flags {
			b.WriteString("    -")
			b.WriteString(f.title)
			b.WriteString(" ")
			for _, slot := range f.optionSlots {
				b.WriteString("<")
				b.WriteString(slot)
				b.WriteString("> ")
			}
			b.WriteString(":\n\t ")
			b.WriteString(f.description)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(s.arguments) > 0 {
		b.WriteString(" Arguments:\n")
		for _, a := range s.arguments {
			b.WriteString("    ")
			b.WriteString(a.title)
			b.WriteString(" :\n\t ")
			b.WriteString(a.description)
			b.WriteString("\n")
		}
	}

	return b.String()
}
