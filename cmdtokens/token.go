package cmdtokens

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleFlag        Role = 1 << iota
	RoleKnown            = 1 << iota // modifies RoleFlag
	RoleHelp             = 1 << iota // modifies RoleFlag
	RoleOptionValue      = 1 << iota
	RolePositional       = 1 << iota
)

type Token struct {
	Arg       string
	FlagTitle string
	Option    string
	// Role is sum of Role constants. Possible values:
	// RoleFlag | RoleKnown              // declared flag title
	// RoleFlag | RoleKnown | RoleHelp   // declared flag titled "h"
	// RoleFlag | RoleHelp               // the built-in help alias
	// RoleFlag                          // undeclared flag title
	// RoleOptionValue                   // consumed as the pending flag's option value
	// RolePositional
	Role Role
}
