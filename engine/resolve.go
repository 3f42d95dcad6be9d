package engine

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/nebula/runtime"
)

// Resolve returns a copy of v in which variables are replaced by the values
// bound to them in reg. A variable is bound by the innermost enclosing
// function with a parameter of the same name, and its value is looked up
// with that function's scope. Free variables and variables bound to
// Uninitialized remain untouched.
//
// Resolve does not modify v or reg.
func Resolve(reg *runtime.Register[Value], v Value) Value {
	return resolve(reg, v, arraylist.New())
}

// binders holds the enclosing functions, outermost first.
func resolve(reg *runtime.Register[Value], v Value, binders *arraylist.List) Value {
	switch x := v.(type) {
	case Var:
		at, f := binderOf(string(x), binders)
		if f == nil {
			return x
		}
		bound, ok := reg.Lookup(f.Scope, f.Name)
		if !ok {
			return x
		}
		if _, uninit := bound.(Uninitialized); uninit {
			return x
		}
		// the argument has been generated outside of f
		return resolve(reg, bound, outerBinders(binders, at))
	case *Fun:
		binders.Add(x)
		body := resolve(reg, x.Body, binders)
		binders.Remove(binders.Size() - 1)
		return &Fun{Scope: x.Scope, Name: x.Name, Body: body}
	case *App:
		return &App{
			Lhs: resolve(reg, x.Lhs, binders),
			Rhs: resolve(reg, x.Rhs, binders),
		}
	}
	return v
}

// binderOf finds the innermost function binding name, together with its
// position in binders.
func binderOf(name string, binders *arraylist.List) (int, *Fun) {
	for i := binders.Size() - 1; i >= 0; i-- {
		b, _ := binders.Get(i)
		if f := b.(*Fun); f.Name == name {
			return i, f
		}
	}
	return -1, nil
}

// outerBinders copies the binders enclosing position at.
func outerBinders(binders *arraylist.List, at int) *arraylist.List {
	outer := arraylist.New()
	for i := 0; i < at; i++ {
		b, _ := binders.Get(i)
		outer.Add(b)
	}
	return outer
}
