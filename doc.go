/*
Package nebula is an interpreter for the untyped lambda calculus.

Source text is scanned and parsed into a location-tagged syntax tree, which
is then generated into runtime values bound to a chain of lexical scopes and
finally reduced by eta- and beta-reduction. Package structure is as follows:

■ syntax: Package syntax implements a scanner (based on lexmachine) and a
recursive descent parser, producing a tagged abstract syntax tree.

■ runtime: Package runtime provides scopes and a scope-indexed register
(symbol table) for the evaluation engine.

■ engine: Package engine generates runtime values from a syntax tree and
reduces them to normal form.

■ cmd/nrepl: An interactive read-eval-print loop.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nebula
