/*
Package nrepl/main provides an interactive command line tool (N.REPL)
for nebula, an interpreter for the untyped lambda calculus. Every line
entered is parsed, generated and reduced. N.REPL prints the reduced
term and, optionally, a view of it with bound variables resolved.

Commands:

    :quit            leave the REPL
    :reg             print the register of the last evaluation
    :tree            print the last value as a tree
    :mode [m]        show or set the mode (derive | evaluate)
    :resolve         toggle printing of resolved values
    :dump            toggle dumping the register to the trace (config key dump-register)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nebula.repl'
func tracer() tracing.Trace {
	return tracing.Select("nebula.repl")
}
