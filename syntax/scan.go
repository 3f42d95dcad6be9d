package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/nebula"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// --- Token types -----------------------------------------------------------

// TokType is a category type for a Token.
type TokType int

// Token categories produced by the scanner.
const (
	EOF         TokType = iota // end of input, not a real token
	Ident                      // x, foo_1, +, <=
	Int                        // -12
	Double                     // 3.14
	String                     // "abc"
	Char                       // 'c'
	Bool                       // true, false
	Keyword                    // if, then, else, let, where
	Backslash                  // \
	Dot                        // .
	Comma                      // ,
	LParen                     // (
	RParen                     // )
	LBracket                   // [
	RBracket                   // ]
	Underscore                 // _
	DoubleColon                // ::
	Eq                         // =
)

var tokTypeNames = [...]string{
	EOF: "EOF", Ident: "identifier", Int: "integer", Double: "double",
	String: "string", Char: "char", Bool: "bool", Keyword: "keyword",
	Backslash: `\`, Dot: ".", Comma: ",", LParen: "(", RParen: ")",
	LBracket: "[", RBracket: "]", Underscore: "_", DoubleColon: "::", Eq: "=",
}

func (t TokType) String() string {
	if t < 0 || int(t) >= len(tokTypeNames) {
		return fmt.Sprintf("<token %d>", int(t))
	}
	return tokTypeNames[t]
}

// The tokens representing literal lexemes
var punctuation = map[string]TokType{
	`\`: Backslash, ".": Dot, ",": Comma, "(": LParen, ")": RParen,
	"[": LBracket, "]": RBracket, "_": Underscore, "::": DoubleColon, "=": Eq,
}

// Operators are scanned as identifiers
var ops = []string{"+", "-", "*", "<", "<=", ">", ">=", "=="}

// The keyword tokens
var keywords = []string{"if", "then", "else", "let", "where"}

// Token is an input token, as produced by the scanner.
//
// Value holds the converted value for literal tokens: int64 for Int,
// float64 for Double, string for String and Ident, rune for Char and
// bool for Bool.
type Token struct {
	Type   TokType
	Lexeme string
	Value  interface{}
	Loc    nebula.Loc
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return t.Lexeme
}

// --- Errors ----------------------------------------------------------------

// ErrSyntax is the error all scanner and parser errors match with errors.Is.
var ErrSyntax = errors.New("syntax error")

// Error is a scanner or parser error at a location of the input.
type Error struct {
	Loc nebula.Loc
	Msg string
}

func (e *Error) Error() string {
	return e.Loc.String() + " " + e.Msg
}

// Is lets errors.Is(err, ErrSyntax) match every syntax.Error.
func (e *Error) Is(target error) bool {
	return target == ErrSyntax
}

func errorAt(loc nebula.Loc, format string, args ...interface{}) *Error {
	return &Error{Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

// --- Lexer -----------------------------------------------------------------

// Lexer is a DFA-based lexer for nebula, backed by lexmachine.
type Lexer struct {
	lexer *lexmachine.Lexer
}

var lexer *Lexer
var lexerErr error
var lexerOnce sync.Once // monitors one-time creation of the lexer

// NewLexer returns the lexer for nebula. The DFA is compiled once and
// shared, as lexmachine lexers may create any number of scanners.
func NewLexer() (*Lexer, error) {
	lexerOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer, lexerErr = compileLexer()
	})
	return lexer, lexerErr
}

func compileLexer() (*Lexer, error) {
	lm := lexmachine.NewLexer()
	lm.Add([]byte(`\-\-[^\n]*`), skip) // comments
	lm.Add([]byte(`( |\t|\n|\r)+`), skip)
	lm.Add([]byte(`\"[^"\n]*\"`), makeString)
	lm.Add([]byte(`\"[^"\n]*`), unterminatedString)
	lm.Add([]byte(`'[^'\n]*'`), makeChar)
	lm.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeIdent)
	lm.Add([]byte(`\-?[0-9]+`), makeInt)
	lm.Add([]byte(`\-?[0-9]+\.[0-9]+`), makeDouble)
	lm.Add([]byte(`\-?[0-9]+\.[0-9]+\.([0-9]|\.)*`), malformedNumber)
	for _, op := range ops {
		lm.Add([]byte(escape(op)), makeToken(Ident))
	}
	for lit, typ := range punctuation {
		lm.Add([]byte(escape(lit)), makeToken(typ))
	}
	if err := lm.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return &Lexer{lexer: lm}, nil
}

// escape quotes every character of a literal lexeme.
func escape(lit string) string {
	return "\\" + strings.Join(strings.Split(lit, ""), "\\")
}

// Scanner creates a scanner for a given input.
func (lx *Lexer) Scanner(input string) (*Scanner, error) {
	s, err := lx.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, last: nebula.Loc{Line: 1, Col: 1}}, nil
}

// --- Scanner ---------------------------------------------------------------

// Scanner reads tokens from an input text.
type Scanner struct {
	scanner *lexmachine.Scanner
	last    nebula.Loc // location right behind the last token
	done    bool
}

// NextToken returns the next token of the input. At the end of input it
// returns an EOF token, for every subsequent call.
func (sc *Scanner) NextToken() (Token, error) {
	if sc.done {
		return Token{Type: EOF, Loc: sc.last}, nil
	}
	tok, err, eof := sc.scanner.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			r, _ := utf8.DecodeRune(ui.Text[ui.StartTC:])
			loc := nebula.Loc{Line: uint64(ui.StartLine), Col: uint64(ui.StartColumn)}
			return Token{}, errorAt(loc, "unexpected symbol '%c'", r)
		}
		return Token{}, err
	}
	if eof {
		sc.done = true
		tracer().Debugf("scanner reached end of input")
		return Token{Type: EOF, Loc: sc.last}, nil
	}
	t := tok.(*lexmachine.Token)
	token := Token{
		Type:   TokType(t.Type),
		Lexeme: string(t.Lexeme),
		Value:  t.Value,
		Loc:    nebula.Loc{Line: uint64(t.StartLine), Col: uint64(t.StartColumn)},
	}
	sc.last = nebula.Loc{Line: uint64(t.EndLine), Col: uint64(t.EndColumn) + 1}
	tracer().Debugf("token %s '%s' @%v", token.Type, token.Lexeme, token.Loc)
	return token, nil
}

// Tokenize scans a complete input text. The last token is always EOF.
func Tokenize(input string) ([]Token, error) {
	lx, err := NewLexer()
	if err != nil {
		return nil, err
	}
	sc, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for {
		token, err := sc.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF {
			return tokens, nil
		}
	}
}

// --- Actions ---------------------------------------------------------------

func matchLoc(m *machines.Match) nebula.Loc {
	return nebula.Loc{Line: uint64(m.StartLine), Col: uint64(m.StartColumn)}
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(typ TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

func makeIdent(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	switch lexeme {
	case "true":
		return s.Token(int(Bool), true, m), nil
	case "false":
		return s.Token(int(Bool), false, m), nil
	}
	for _, kw := range keywords {
		if lexeme == kw {
			return s.Token(int(Keyword), lexeme, m), nil
		}
	}
	return s.Token(int(Ident), lexeme, m), nil
}

func makeString(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	return s.Token(int(String), lexeme[1:len(lexeme)-1], m), nil
}

func unterminatedString(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, errorAt(matchLoc(m), "incomplete string literal")
}

func makeChar(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	content := m.Bytes[1 : len(m.Bytes)-1]
	r, size := utf8.DecodeRune(content)
	if len(content) == 0 || size != len(content) || r == utf8.RuneError {
		return nil, errorAt(matchLoc(m), "malformed char literal %s", string(m.Bytes))
	}
	return s.Token(int(Char), r, m), nil
}

func makeInt(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	n, err := strconv.ParseInt(string(m.Bytes), 10, 64)
	if err != nil {
		return nil, errorAt(matchLoc(m), "invalid integer number: %v", err)
	}
	return s.Token(int(Int), n, m), nil
}

func makeDouble(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	f, err := strconv.ParseFloat(string(m.Bytes), 64)
	if err != nil {
		return nil, errorAt(matchLoc(m), "invalid float number: %v", err)
	}
	return s.Token(int(Double), f, m), nil
}

func malformedNumber(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, errorAt(matchLoc(m), "invalid number format")
}
