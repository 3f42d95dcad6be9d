package syntax

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/nebula"
)

// TaggedExpr is an expression together with its source location.
type TaggedExpr = nebula.Tag[Expr, nebula.Loc]

// Program is the result of parsing an input text: a non-empty sequence of
// top-level expressions, in input order.
type Program struct {
	Exprs []TaggedExpr
}

// Last returns the last top-level expression of a program.
func (prg Program) Last() (TaggedExpr, bool) {
	if len(prg.Exprs) == 0 {
		return TaggedExpr{}, false
	}
	return prg.Exprs[len(prg.Exprs)-1], true
}

// --- Expressions -----------------------------------------------------------

// Expr is an expression of the abstract syntax tree. It is one of
// *LiteralExpr, *FunExpr or *AppExpr.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// LiteralExpr is a literal value or a reference to a name.
type LiteralExpr struct {
	Literal Literal
}

// FunExpr is a function of a single parameter: \x. body
type FunExpr struct {
	Param string
	Body  TaggedExpr // location is the start of the body
}

// AppExpr is the application of a function to an argument: (f a)
type AppExpr struct {
	Fun TaggedExpr
	Arg TaggedExpr
}

func (*LiteralExpr) isExpr() {}
func (*FunExpr) isExpr()     {}
func (*AppExpr) isExpr()     {}

func (e *LiteralExpr) String() string {
	return e.Literal.String()
}

func (e *FunExpr) String() string {
	return fmt.Sprintf("\\%s. %s", e.Param, e.Body.Item)
}

func (e *AppExpr) String() string {
	return fmt.Sprintf("(%s %s)", e.Fun.Item, e.Arg.Item)
}

// --- Literals --------------------------------------------------------------

// Literal is a literal of the source language. It is one of RefLit,
// IntLit, DoubleLit, StringLit, CharLit or BoolLit.
type Literal interface {
	fmt.Stringer
	isLiteral()
}

// RefLit is a reference to a name, i.e. an identifier.
type RefLit string

// IntLit is a 64-bit integer literal.
type IntLit int64

// DoubleLit is a floating point literal.
type DoubleLit float64

// StringLit is a double quoted string literal, without the quotes.
type StringLit string

// CharLit is a single quoted character literal.
type CharLit rune

// BoolLit is one of true or false.
type BoolLit bool

func (RefLit) isLiteral()    {}
func (IntLit) isLiteral()    {}
func (DoubleLit) isLiteral() {}
func (StringLit) isLiteral() {}
func (CharLit) isLiteral()   {}
func (BoolLit) isLiteral()   {}

func (l RefLit) String() string    { return string(l) }
func (l IntLit) String() string    { return strconv.FormatInt(int64(l), 10) }
func (l DoubleLit) String() string { return strconv.FormatFloat(float64(l), 'f', -1, 64) }
func (l StringLit) String() string { return `"` + string(l) + `"` }
func (l CharLit) String() string   { return "'" + string(rune(l)) + "'" }
func (l BoolLit) String() string   { return strconv.FormatBool(bool(l)) }
