// token.go
package mython

import "fmt"

// TokenType identifies the kind of a Token. The set is closed: every Mython
// token is exactly one of the kinds below.
type TokenType int

const (
	EOF TokenType = iota

	// Valued tokens.
	NUMBER // int32 literal
	ID     // identifier
	STRING // string literal
	CHAR   // a single punctuation character with no dedicated kind

	// Keywords.
	CLASS
	RETURN
	IF
	ELSE
	DEF
	PRINT
	AND
	OR
	NOT
	NONE
	TRUE
	FALSE

	// Structural tokens.
	NEWLINE
	INDENT
	DEDENT

	// Two-character operators.
	EQ          // ==
	NOT_EQ      // !=
	LESS_OR_EQ  // <=
	GREATER_OR_EQ // >=
)

var tokenTypeNames = map[TokenType]string{
	EOF:           "Eof",
	NUMBER:        "Number",
	ID:            "Id",
	STRING:        "String",
	CHAR:          "Char",
	CLASS:         "Class",
	RETURN:        "Return",
	IF:            "If",
	ELSE:          "Else",
	DEF:           "Def",
	PRINT:         "Print",
	AND:           "And",
	OR:            "Or",
	NOT:           "Not",
	NONE:          "None",
	TRUE:          "True",
	FALSE:         "False",
	NEWLINE:       "Newline",
	INDENT:        "Indent",
	DEDENT:        "Dedent",
	EQ:            "Eq",
	NOT_EQ:        "NotEq",
	LESS_OR_EQ:    "LessOrEq",
	GREATER_OR_EQ: "GreaterOrEq",
}

func (t TokenType) String() string {
	if s, ok := tokenTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// keywords maps a recognized identifier spelling to its dedicated token kind.
var keywords = map[string]TokenType{
	"class":  CLASS,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"def":    DEF,
	"print":  PRINT,
	"and":    AND,
	"or":     OR,
	"not":    NOT,
	"None":   NONE,
	"True":   TRUE,
	"False":  FALSE,
}

// twoCharOperators maps a recognized two-character punctuation pair to its
// combined token kind.
var twoCharOperators = map[string]TokenType{
	"==": EQ,
	"!=": NOT_EQ,
	"<=": LESS_OR_EQ,
	">=": GREATER_OR_EQ,
}

// Token is a single lexeme produced by the Lexer. Equality is structural:
// two tokens are equal iff they have the same Type and, for the valued
// kinds (Number/Id/String/Char), the same value. Line and Col are 1-based
// and locate the token's first character in the source text.
type Token struct {
	Type    TokenType
	Number  int32
	Str     string // Id.name or String.text
	Char    byte
	Line    int
	Col     int
}

// Equal reports whether two tokens are structurally equal, per spec.md §3.
func (t Token) Equal(o Token) bool {
	if t.Type != o.Type {
		return false
	}
	switch t.Type {
	case NUMBER:
		return t.Number == o.Number
	case ID, STRING:
		return t.Str == o.Str
	case CHAR:
		return t.Char == o.Char
	default:
		return true
	}
}

// String renders the token the way spec.md §3 describes: the kind name,
// with a brace-wrapped value for the valued variants.
func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return fmt.Sprintf("%s{%d}", t.Type, t.Number)
	case ID, STRING:
		return fmt.Sprintf("%s{%s}", t.Type, t.Str)
	case CHAR:
		return fmt.Sprintf("%s{%c}", t.Type, t.Char)
	default:
		return t.Type.String()
	}
}

func numberToken(n int32, line, col int) Token  { return Token{Type: NUMBER, Number: n, Line: line, Col: col} }
func idToken(name string, line, col int) Token  { return Token{Type: ID, Str: name, Line: line, Col: col} }
func strToken(s string, line, col int) Token     { return Token{Type: STRING, Str: s, Line: line, Col: col} }
func charToken(c byte, line, col int) Token      { return Token{Type: CHAR, Char: c, Line: line, Col: col} }
func kindToken(k TokenType, line, col int) Token { return Token{Type: k, Line: line, Col: col} }
