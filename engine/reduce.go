package engine

import (
	"fmt"

	"github.com/npillmayer/nebula/runtime"
)

// Reduce reduces a generated value: eta-reduction first, then
// beta-reduction, each of them exactly once. Argument bindings are recorded
// in reg.
func Reduce(reg *runtime.Register[Value], v Value) (Value, error) {
	tracer().Debugf("reduce %v", v)
	v = EtaReduce(reg, v)
	tracer().Debugf("eta ⇒ %v", v)
	v, err := BetaReduce(reg, v)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("beta ⇒ %v", v)
	return v, nil
}

// --- Eta-reduction ---------------------------------------------------------

// EtaReduce rewrites \x. (f x) to f, bottom-up, provided x does not occur
// free in f. The register entry of the parameter removed is deleted.
// All other values are rebuilt unchanged, with their sub-terms reduced.
func EtaReduce(reg *runtime.Register[Value], v Value) Value {
	switch x := v.(type) {
	case *Fun:
		body := EtaReduce(reg, x.Body)
		if app, ok := body.(*App); ok {
			if arg, ok := app.Rhs.(Var); ok && string(arg) == x.Name && !occursFree(x.Name, app.Lhs) {
				tracer().Debugf("eta: \\%s. %v ⇒ %v", x.Name, app, app.Lhs)
				reg.Remove(x.Scope, x.Name)
				return app.Lhs
			}
		}
		return &Fun{Scope: x.Scope, Name: x.Name, Body: body}
	case *App:
		return &App{Lhs: EtaReduce(reg, x.Lhs), Rhs: EtaReduce(reg, x.Rhs)}
	}
	return v
}

// --- Beta-reduction --------------------------------------------------------

// BetaReduce reduces applications. For (f a), f is reduced first.
// If it yields a function \x. b, then b and a are reduced, the reduced
// argument is bound to x in the function's scope, and the function is
// returned with its reduced body. If f yields a variable, or an application
// headed by a variable, the application is rebuilt with a reduced argument.
// Applying anything else is an error.
//
// Values other than applications are returned unchanged.
func BetaReduce(reg *runtime.Register[Value], v Value) (Value, error) {
	app, ok := v.(*App)
	if !ok {
		return v, nil
	}
	lhs, err := BetaReduce(reg, app.Lhs)
	if err != nil {
		return nil, err
	}
	if f, ok := lhs.(*Fun); ok {
		body, err := BetaReduce(reg, f.Body)
		if err != nil {
			return nil, err
		}
		rhs, err := BetaReduce(reg, app.Rhs)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("beta: bind %s%v = %v", f.Name, f.Scope, rhs)
		reg.Register(f.Scope, f.Name, rhs)
		return &Fun{Scope: f.Scope, Name: f.Name, Body: body}, nil
	}
	if _, ok := head(lhs).(Var); ok { // neutral term
		rhs, err := BetaReduce(reg, app.Rhs)
		if err != nil {
			return nil, err
		}
		return &App{Lhs: lhs, Rhs: rhs}, nil
	}
	tracer().Errorf("cannot apply %v", lhs)
	return nil, &Error{
		Msg:  fmt.Sprintf("exception: expected a function or a variable, got %v", lhs),
		Kind: ErrNotAFunction,
	}
}
