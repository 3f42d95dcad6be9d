package runtime

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// ScopeID is the identity of a single scope.
type ScopeID = uint32

// Scope is a lexical context, identified by an ancestry chain of IDs.
// The last element of the chain is the scope's own ID, the prefix lists
// its ancestors from the root down to the parent. A child's ID is always
// greater than its parent's.
//
// Scopes are values and never change after creation.
type Scope struct {
	ancestors []ScopeID
}

// NewScope creates a root scope [0].
func NewScope() Scope {
	return Scope{ancestors: []ScopeID{0}}
}

// Inherits derives a child scope with ID parent_id+1. The receiver is left
// unchanged. Siblings derived this way share an ID; clients which need
// distinct siblings hand out IDs themselves and use Child.
func (s Scope) Inherits() Scope {
	return s.Child(s.ID() + 1)
}

// Child derives a child scope with a given ID, which has to be greater than
// the ID of s. Child panics otherwise.
func (s Scope) Child(id ScopeID) Scope {
	if id <= s.ID() {
		panic(fmt.Sprintf("child scope ID %d of scope %v is not greater than parent ID", id, s))
	}
	child := Scope{ancestors: append(slices.Clone(s.Ancestors()), id)}
	tracer().Debugf("scope %v inherits from %v", child, s)
	return child
}

// ID returns the scope's own ID, i.e. the last element of the chain.
func (s Scope) ID() ScopeID {
	if len(s.ancestors) == 0 {
		return 0
	}
	return s.ancestors[len(s.ancestors)-1]
}

// Ancestors returns the full ancestry chain, root first.
// The returned slice is a copy.
func (s Scope) Ancestors() []ScopeID {
	if len(s.ancestors) == 0 {
		return []ScopeID{0}
	}
	return slices.Clone(s.ancestors)
}

// Depth is the number of ancestors of a scope. The root has depth 0.
func (s Scope) Depth() int {
	if len(s.ancestors) == 0 {
		return 0
	}
	return len(s.ancestors) - 1
}

// Encloses is a predicate: is s an ancestor of other, or other itself?
func (s Scope) Encloses(other Scope) bool {
	mine, theirs := s.Ancestors(), other.Ancestors()
	if len(mine) > len(theirs) {
		return false
	}
	return slices.Equal(mine, theirs[:len(mine)])
}

// String returns the chain, e.g. "[0 1 3]".
func (s Scope) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, id := range s.Ancestors() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%d", id)
	}
	b.WriteString("]")
	return b.String()
}
