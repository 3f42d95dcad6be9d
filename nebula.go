package nebula

import "fmt"

// --- Source locations ------------------------------------------------------

// Loc is a position within an input text. Lines and columns start at 1.
// The zero value denotes an unknown position.
type Loc struct {
	Line uint64
	Col  uint64
}

// IsUnknown is a predicate: does l carry no position information?
func (l Loc) IsUnknown() bool {
	return l == Loc{}
}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// --- Tags ------------------------------------------------------------------

// Tag pairs a tree node with an annotation. Throughout nebula the
// annotation is a source location, carried along for diagnostics:
//
//    Tag[Expr, Loc]{ Item: expr, Tag: Loc{Line: 1, Col: 4} }
//
type Tag[I any, A any] struct {
	Item I
	Tag  A
}

// Tagged wraps an item together with its annotation.
func Tagged[I any, A any](item I, ann A) Tag[I, A] {
	return Tag[I, A]{Item: item, Tag: ann}
}

func (t Tag[I, A]) String() string {
	return fmt.Sprintf("%v", t.Item)
}
