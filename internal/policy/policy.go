// Package policy holds the ownership decision applied before every
// project or child-record access. It is deliberately free of storage
// and transport concerns so the rules stay testable as a truth table.
package policy

import "github.com/scafflow-dev/scafflow/internal/types"

type Decision int

const (
	Deny Decision = iota
	ReadAllowed
	WriteAllowed
)

// Identity is the authenticated caller as far as authorization cares:
// who they are and whether they hold the admin role.
type Identity struct {
	ID   uint
	Role string
}

func (i Identity) IsAdmin() bool {
	return i.Role == types.RoleAdmin
}

// Decide resolves what an identity may do with a project owned by
// projectOwnerID. Admins can read everything but write nothing, not
// even records they would otherwise own. Owners read and write their
// own projects. Everyone else is denied.
func Decide(identity *Identity, projectOwnerID uint) Decision {
	if identity == nil {
		return Deny
	}

	if identity.IsAdmin() {
		return ReadAllowed
	}

	if identity.ID == projectOwnerID {
		return WriteAllowed
	}

	return Deny
}

// CanRead reports whether the decision grants read access. Write
// access implies read access.
func (d Decision) CanRead() bool {
	return d == ReadAllowed || d == WriteAllowed
}

func (d Decision) CanWrite() bool {
	return d == WriteAllowed
}
