package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/nebula"
)

// --- Grammar ---------------------------------------------------------------

// Program  ::=  Expr { Expr } EOF
// Expr     ::=  Literal                   // 1  2.5  "abc"  'c'  true
// Expr     ::=  ident                     // x
// Expr     ::=  '\' ident '.' Expr        // \x. x
// Expr     ::=  '(' Expr Expr ')'         // (f a)
// Expr     ::=  '(' Expr ')'              // grouping: ((\x. x) 5)
//
// Comments starting with '--' will be filtered by the scanner.

// Parse parses an input string, given in nebula format. It returns a program
// containing every top-level expression, or an error in case of failure.
func Parse(input string) (Program, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return Program{}, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a token sequence, which has to be terminated by an
// EOF token.
func ParseTokens(tokens []Token) (Program, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		tokens = append(tokens, Token{Type: EOF})
	}
	p := &parser{tokens: tokens}
	var prg Program
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return Program{}, err
		}
		prg.Exprs = append(prg.Exprs, expr)
		if p.lookahead().Type == EOF {
			break
		}
	}
	tracer().Debugf("parsed %d top-level expression(s)", len(prg.Exprs))
	return prg, nil
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) lookahead() Token {
	return p.tokens[p.pos]
}

func (p *parser) loc() nebula.Loc {
	return p.lookahead().Loc
}

// shift consumes a token. The final EOF token is never consumed.
func (p *parser) shift() Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(expected TokType) (Token, error) {
	t := p.shift()
	if t.Type != expected {
		return t, errorAt(t.Loc, "expected '%s' but got %s instead", expected, describe(t))
	}
	return t, nil
}

func (p *parser) expectIdent() (string, error) {
	t := p.shift()
	if t.Type != Ident {
		return "", errorAt(t.Loc, "expected an identifier but got %s instead", describe(t))
	}
	return t.Lexeme, nil
}

func (p *parser) parseExpr() (TaggedExpr, error) {
	start := p.loc()
	token := p.lookahead()
	switch token.Type {
	case Ident:
		p.shift()
		return tag(&LiteralExpr{Literal: RefLit(token.Lexeme)}, start), nil
	case Int:
		p.shift()
		return tag(&LiteralExpr{Literal: IntLit(token.Value.(int64))}, start), nil
	case Double:
		p.shift()
		return tag(&LiteralExpr{Literal: DoubleLit(token.Value.(float64))}, start), nil
	case String:
		p.shift()
		return tag(&LiteralExpr{Literal: StringLit(token.Value.(string))}, start), nil
	case Char:
		p.shift()
		return tag(&LiteralExpr{Literal: CharLit(token.Value.(rune))}, start), nil
	case Bool:
		p.shift()
		return tag(&LiteralExpr{Literal: BoolLit(token.Value.(bool))}, start), nil
	case Backslash: // function
		return p.parseFun()
	case LParen: // application
		return p.parseApp()
	}
	return TaggedExpr{}, errorAt(start, "unexpected token %s", describe(token))
}

// \x. body
func (p *parser) parseFun() (TaggedExpr, error) {
	start := p.loc()
	p.shift()
	name, err := p.expectIdent()
	if err != nil {
		return TaggedExpr{}, err
	}
	if _, err := p.expect(Dot); err != nil {
		return TaggedExpr{}, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return TaggedExpr{}, err
	}
	tracer().Debugf("%v function \\%s", start, name)
	return tag(&FunExpr{Param: name, Body: body}, start), nil
}

// (f a) or (e)
func (p *parser) parseApp() (TaggedExpr, error) {
	start := p.loc()
	p.shift()
	fun, err := p.parseExpr()
	if err != nil {
		return TaggedExpr{}, err
	}
	switch p.lookahead().Type {
	case RParen: // parenthesized expression
		p.shift()
		return fun, nil
	case EOF:
		_, err := p.expect(RParen)
		return TaggedExpr{}, err
	}
	arg, err := p.parseExpr()
	if err != nil {
		return TaggedExpr{}, err
	}
	if _, err := p.expect(RParen); err != nil {
		return TaggedExpr{}, err
	}
	return tag(&AppExpr{Fun: fun, Arg: arg}, start), nil
}

// --- Helpers ---------------------------------------------------------------

func tag(e Expr, loc nebula.Loc) TaggedExpr {
	return nebula.Tagged[Expr](e, loc)
}

func describe(t Token) string {
	switch t.Type {
	case EOF:
		return "EOF"
	case Keyword:
		return "keyword '" + t.Lexeme + "'"
	}
	return "'" + t.Lexeme + "'"
}
