package engine

import (
	"strconv"
	"strings"

	"github.com/npillmayer/nebula/runtime"
)

// Value is the runtime representation of a term. It is one of
//
//    Uninitialized                            placeholder for an unbound parameter
//    Var                                      reference to a name
//    Integer, Double, Bool, String, Char      literals
//    *Fun                                     function of one parameter
//    *App                                     application
//
// Values form strict trees: no node is part of two trees.
type Value interface {
	String() string
	isValue()
}

// Uninitialized is the value of a parameter which has not been bound yet.
type Uninitialized struct{}

// Var is a reference to a name, resolved through the enclosing functions.
type Var string

// Literal values.
type (
	Integer int64
	Double  float64
	Bool    bool
	String  string
	Char    rune
)

// Fun is a function value. It captures the scope it introduced for its
// parameter.
type Fun struct {
	Scope runtime.Scope
	Name  string
	Body  Value
}

// App is the application of Lhs to Rhs.
type App struct {
	Lhs Value
	Rhs Value
}

func (Uninitialized) isValue() {}
func (Var) isValue()           {}
func (Integer) isValue()       {}
func (Double) isValue()        {}
func (Bool) isValue()          {}
func (String) isValue()        {}
func (Char) isValue()          {}
func (*Fun) isValue()          {}
func (*App) isValue()          {}

func (Uninitialized) String() string { return "<uninitialized>" }
func (v Var) String() string         { return string(v) }
func (v Integer) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v Double) String() string      { return strconv.FormatFloat(float64(v), 'f', -1, 64) }
func (v Bool) String() string        { return strconv.FormatBool(bool(v)) }
func (v String) String() string      { return `"` + string(v) + `"` }
func (v Char) String() string        { return "'" + string(rune(v)) + "'" }

func (f *Fun) String() string {
	var b strings.Builder
	writeValue(&b, f)
	return b.String()
}

func (a *App) String() string {
	var b strings.Builder
	writeValue(&b, a)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch x := v.(type) {
	case *Fun:
		b.WriteString("\\")
		b.WriteString(x.Name)
		b.WriteString(". ")
		writeValue(b, x.Body)
	case *App:
		b.WriteString("(")
		writeValue(b, x.Lhs)
		b.WriteString(" ")
		writeValue(b, x.Rhs)
		b.WriteString(")")
	case nil:
		b.WriteString("<nil>")
	default:
		b.WriteString(x.String())
	}
}

// IsApplication is a predicate: is v an application?
func IsApplication(v Value) bool {
	_, ok := v.(*App)
	return ok
}

// head returns the innermost left-hand side of a chain of applications.
func head(v Value) Value {
	for {
		app, ok := v.(*App)
		if !ok {
			return v
		}
		v = app.Lhs
	}
}

// occursFree is a predicate: does name occur free in v?
func occursFree(name string, v Value) bool {
	switch x := v.(type) {
	case Var:
		return string(x) == name
	case *Fun:
		if x.Name == name {
			return false // shadowed
		}
		return occursFree(name, x.Body)
	case *App:
		return occursFree(name, x.Lhs) || occursFree(name, x.Rhs)
	}
	return false
}
