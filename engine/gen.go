package engine

import (
	"fmt"

	"github.com/npillmayer/nebula"
	"github.com/npillmayer/nebula/runtime"
	"github.com/npillmayer/nebula/syntax"
)

// Generator generates values from tagged expressions. Every function
// introduces a child scope, with its parameter registered as Uninitialized
// in the generator's register. A generator hands out scope IDs from a
// counter, so no two scopes it creates share an ID, not even siblings.
//
// A generator is not safe for concurrent use.
type Generator struct {
	reg    *runtime.Register[Value]
	lastID runtime.ScopeID
}

// NewGenerator creates a generator which registers parameters in reg.
func NewGenerator(reg *runtime.Register[Value]) *Generator {
	return &Generator{reg: reg}
}

// Generate produces the value for expr in scope. Arguments of applications
// are generated in the scope of the application, not in the scope of the
// function applied.
func (g *Generator) Generate(scope runtime.Scope, expr syntax.TaggedExpr) (Value, error) {
	switch e := expr.Item.(type) {
	case *syntax.LiteralExpr:
		return generateLiteral(e.Literal, expr.Tag)
	case *syntax.FunExpr:
		return g.generateFun(scope, e)
	case *syntax.AppExpr:
		return g.generateApp(scope, e)
	}
	return nil, fmt.Errorf("%v cannot generate value for expression %v", expr.Tag, expr.Item)
}

// Generate is a shortcut for generating a single expression with a new
// Generator. Use a Generator to generate several expressions into one
// register.
func Generate(reg *runtime.Register[Value], scope runtime.Scope, expr syntax.TaggedExpr) (Value, error) {
	return NewGenerator(reg).Generate(scope, expr)
}

// childScope derives a scope with a fresh ID.
func (g *Generator) childScope(parent runtime.Scope) runtime.Scope {
	if g.lastID < parent.ID() {
		g.lastID = parent.ID()
	}
	g.lastID++
	return parent.Child(g.lastID)
}

func generateLiteral(lit syntax.Literal, loc nebula.Loc) (Value, error) {
	switch l := lit.(type) {
	case syntax.RefLit:
		return Var(l), nil
	case syntax.IntLit:
		return Integer(l), nil
	case syntax.DoubleLit:
		return Double(l), nil
	case syntax.StringLit:
		return String(l), nil
	case syntax.CharLit:
		return Char(l), nil
	case syntax.BoolLit:
		return Bool(l), nil
	}
	return nil, fmt.Errorf("%v unknown literal %v", loc, lit)
}

func (g *Generator) generateFun(scope runtime.Scope, fun *syntax.FunExpr) (Value, error) {
	child := g.childScope(scope)
	if err := Introduce(g.reg, child, fun.Param, fun.Body.Tag); err != nil {
		return nil, err
	}
	body, err := g.Generate(child, fun.Body)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("generated function \\%s in scope %v", fun.Param, child)
	return &Fun{Scope: child, Name: fun.Param, Body: body}, nil
}

func (g *Generator) generateApp(scope runtime.Scope, app *syntax.AppExpr) (Value, error) {
	lhs, err := g.Generate(scope, app.Fun)
	if err != nil {
		return nil, err
	}
	rhs, err := g.Generate(scope, app.Arg)
	if err != nil {
		return nil, err
	}
	return &App{Lhs: lhs, Rhs: rhs}, nil
}

// Introduce registers a function parameter as Uninitialized in scope.
// It fails if name has already been registered in scope. loc is the
// location reported with the error.
func Introduce(reg *runtime.Register[Value], scope runtime.Scope, name string, loc nebula.Loc) error {
	if !reg.Register(scope, name, Uninitialized{}) {
		tracer().Errorf("%v variable '%s' is already introduced in scope %v", loc, name, scope)
		return &Error{
			Loc:  loc,
			Msg:  fmt.Sprintf("variable '%s' is already introduced in that scope", name),
			Kind: ErrAlreadyIntroduced,
		}
	}
	return nil
}
