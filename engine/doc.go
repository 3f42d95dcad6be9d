/*
Package engine is the evaluation engine of nebula.

Evaluation of a term happens in two steps: generation and reduction.

Generation walks a parsed expression once and produces a Value tree.
Every function introduces a fresh child scope, and its parameter is
registered as uninitialized in a register (the symbol table), keyed by
that scope.

Reduction runs eta-reduction followed by beta-reduction over a value.
Beta-reduction does not substitute arguments into function bodies.
Instead, an argument is bound in the register under the scope of the
function it is applied to, and the function's shape survives:

    ((\x. x) 5)   ⇒   \x. x     with register entry  1:x = 5

Consumers resolve variables through the register, keyed by the scope of
the function binding them (see Resolve).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nebula.engine'.
func tracer() tracing.Trace {
	return tracing.Select("nebula.engine")
}
