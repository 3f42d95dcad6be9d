/*
Package syntax provides a scanner and a parser for nebula, a language of
untyped lambda terms.

    \x. x               -- identity
    ((\x. \y. x) 1)     -- application
    "abc"  'c'  -12  3.5  true

The scanner is built with lexmachine, the parser is a recursive descent
parser producing a Program of location-tagged expressions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nebula.syntax'
func tracer() tracing.Trace {
	return tracing.Select("nebula.syntax")
}
