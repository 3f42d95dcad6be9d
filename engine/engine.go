package engine

import (
	"fmt"
	"strings"

	"github.com/npillmayer/nebula/runtime"
	"github.com/npillmayer/nebula/syntax"
)

// Mode selects the entry point used by Interpret.
type Mode int

// Evaluation modes.
const (
	ModeDerive   Mode = iota // only top-level applications are accepted
	ModeEvaluate             // any term is accepted
)

func (m Mode) String() string {
	switch m {
	case ModeDerive:
		return "derive"
	case ModeEvaluate:
		return "evaluate"
	}
	return fmt.Sprintf("<mode %d>", int(m))
}

// ParseMode returns the mode for a mode name, i.e. "derive" or "evaluate".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "derive", "d":
		return ModeDerive, nil
	case "evaluate", "eval", "e":
		return ModeEvaluate, nil
	}
	return ModeDerive, fmt.Errorf("unknown mode '%s'", name)
}

// Derive generates and reduces the last top-level expression of a program,
// which has to be a function application. It returns the reduced value
// together with the register holding the bindings of the derivation.
func Derive(prog syntax.Program) (Value, *runtime.Register[Value], error) {
	return run(prog, true)
}

// Evaluate is like Derive, but accepts any term.
func Evaluate(prog syntax.Program) (Value, *runtime.Register[Value], error) {
	return run(prog, false)
}

// Interpret parses source and derives or evaluates it, depending on mode.
func Interpret(source string, mode Mode) (Value, *runtime.Register[Value], error) {
	prog, err := syntax.Parse(source)
	if err != nil {
		return nil, nil, err
	}
	if mode == ModeEvaluate {
		return Evaluate(prog)
	}
	return Derive(prog)
}

func run(prog syntax.Program, applicationOnly bool) (Value, *runtime.Register[Value], error) {
	expr, ok := prog.Last()
	if !ok {
		return nil, nil, ErrEmptyProgram
	}
	for i, e := range prog.Exprs[:len(prog.Exprs)-1] {
		tracer().Infof("%v ignoring top-level expression #%d: %v", e.Tag, i+1, e.Item)
	}
	reg := runtime.NewRegister[Value]()
	v, err := Generate(reg, runtime.NewScope(), expr)
	if err != nil {
		return nil, reg, err
	}
	if applicationOnly && !IsApplication(v) {
		return nil, reg, &Error{
			Loc:  expr.Tag,
			Msg:  fmt.Sprintf("can only derive top function applications, got %v", v),
			Kind: ErrNotAnApplication,
		}
	}
	tracer().Debugf("generated %v", v)
	v, err = Reduce(reg, v)
	if err != nil {
		return nil, reg, err
	}
	return v, reg, nil
}
