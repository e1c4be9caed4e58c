// lexer.go — Component B: the indentation-aware tokenizer.
//
// Ported faithfully from original_source/mython/lexer.cpp's SplitStream
// state machine (the indentation bookkeeping, the leading-zero rule for
// number literals, the keyword-is-a-valid-prefix rule for identifiers, and
// the EOF drain policy), restructured into the teacher's Go idiom: a
// byte-slice scanner instead of an istream, and a Cursor API wrapping the
// produced token slice (spec.md §4.1) instead of re-scanning on demand.
package mython

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Lexer tokenizes a full source text up front and exposes the result
// through the Cursor API described in spec.md §4.1: Current/Advance/typed
// expectations, all operating over an in-memory token slice.
type Lexer struct {
	tokens []Token
	pos    int
}

// NewLexer reads all of src and tokenizes it immediately. The returned
// error, if any, is a *LexError, or the error from reading src.
func NewLexer(src io.Reader) (*Lexer, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	toks, err := scan(data)
	if err != nil {
		return nil, err
	}
	return &Lexer{tokens: toks}, nil
}

// NewLexerFromString is a convenience wrapper over NewLexer for callers
// that already hold the full source text as a string.
func NewLexerFromString(src string) (*Lexer, error) {
	return NewLexer(strings.NewReader(src))
}

// Current returns the token at the cursor without moving it.
func (l *Lexer) Current() Token {
	return l.tokens[l.pos]
}

// Advance moves the cursor forward one token and returns the new current
// token. The cursor clamps at the trailing Eof token: once Eof is reached,
// further Advance calls keep returning it.
func (l *Lexer) Advance() Token {
	if l.pos < len(l.tokens)-1 {
		l.pos++
	}
	return l.Current()
}

// Expect verifies that the current token has the given kind, failing with a
// *RuntimeError otherwise. It does not move the cursor.
func (l *Lexer) Expect(kind TokenType) error {
	if l.Current().Type != kind {
		return &RuntimeError{Msg: fmt.Sprintf("expected %s, got %s", kind, l.Current().Type)}
	}
	return nil
}

// ExpectNext moves the cursor forward, then verifies that the resulting
// current token has the given kind and (for CHAR tokens) value.
func (l *Lexer) ExpectNext(kind TokenType, ch byte) error {
	l.Advance()
	if err := l.Expect(kind); err != nil {
		return err
	}
	if kind == CHAR && l.Current().Char != ch {
		return &RuntimeError{Msg: fmt.Sprintf("expected '%c', got '%c'", ch, l.Current().Char)}
	}
	return nil
}

// Tokens returns every token produced, including the trailing Eof. Mainly
// useful to tests that compare whole token streams.
func (l *Lexer) Tokens() []Token {
	return l.tokens
}

const specialChars = "=.,()+><-*/:!"

func isSpecialChar(c byte) bool {
	return strings.IndexByte(specialChars, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// scanner walks the raw source bytes, tracking the 1-based line/column of
// the next unconsumed byte.
type scanner struct {
	src       []byte
	i         int
	line, col int
}

func (s *scanner) eof() bool { return s.i >= len(s.src) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.i]
}

func (s *scanner) advance() byte {
	c := s.src[s.i]
	s.i++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

// scan tokenizes the full input in one pass, grounded on SplitStream's
// interleaving of indentation bookkeeping with token dispatch.
func scan(data []byte) ([]Token, error) {
	s := &scanner{src: data, line: 1, col: 1}

	var tokens []Token

	notSpaceExist := false // has the current logical line already finalized its indentation?
	strokeNotEmpty := false // has the current (possibly unterminated) line produced any content?
	prevIndent := 0
	curIndent := 0
	isComment := false

	for {
		if s.eof() {
			if strokeNotEmpty {
				if len(tokens) == 0 || tokens[len(tokens)-1].Type != NEWLINE {
					tokens = append(tokens, kindToken(NEWLINE, s.line, s.col))
				}
			}
			if curIndent < prevIndent {
				n := (prevIndent - curIndent) / 2
				for k := 0; k < n; k++ {
					tokens = append(tokens, kindToken(DEDENT, s.line, s.col))
				}
			}
			tokens = append(tokens, kindToken(EOF, s.line, s.col))
			return tokens, nil
		}

		c := s.peek()

		if c == '#' {
			isComment = true
		}
		if isComment {
			if c == '\n' {
				isComment = false
			} else {
				s.advance()
				continue
			}
		}

		if c == ' ' || c == '\t' {
			if !notSpaceExist {
				if c == ' ' {
					curIndent++
				} else {
					curIndent += 2
				}
			}
			s.advance()
			continue
		}

		if c != '\n' && !notSpaceExist {
			line, col := s.line, s.col
			if curIndent >= prevIndent {
				n := (curIndent - prevIndent) / 2
				for k := 0; k < n; k++ {
					tokens = append(tokens, kindToken(INDENT, line, col))
				}
			} else {
				n := (prevIndent - curIndent) / 2
				for k := 0; k < n; k++ {
					tokens = append(tokens, kindToken(DEDENT, line, col))
				}
			}
			prevIndent = curIndent
			curIndent = 0
			notSpaceExist = true
			strokeNotEmpty = true
		}

		switch {
		case c == '"' || c == '\'':
			line, col := s.line, s.col
			text, err := s.scanString(c)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, strToken(text, line, col))

		case c == '\n':
			if notSpaceExist {
				notSpaceExist = false
				tokens = append(tokens, kindToken(NEWLINE, s.line, s.col))
			} else {
				curIndent = 0
			}
			strokeNotEmpty = false
			s.advance()

		case isDigit(c):
			line, col := s.line, s.col
			n, err := s.scanNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, numberToken(n, line, col))

		case isSpecialChar(c):
			line, col := s.line, s.col
			c1 := s.advance()
			if !s.eof() {
				pair := string([]byte{c1, s.peek()})
				if kind, ok := twoCharOperators[pair]; ok {
					s.advance()
					tokens = append(tokens, kindToken(kind, line, col))
					break
				}
			}
			tokens = append(tokens, charToken(c1, line, col))

		default:
			line, col := s.line, s.col
			text := s.scanIdentOrKeyword()
			if kind, ok := keywords[text]; ok {
				tokens = append(tokens, kindToken(kind, line, col))
			} else {
				tokens = append(tokens, idToken(text, line, col))
			}
		}
	}
}

// scanString reads a quoted string literal, starting at the opening quote
// character (which it consumes). Escapes recognized: \n \t \' \". Anything
// else following a backslash, or an unescaped newline/EOF before the
// closing quote, is a *LexError — per spec.md §7.
func (s *scanner) scanString(quote byte) (string, error) {
	startLine, startCol := s.line, s.col
	s.advance() // opening quote

	var b strings.Builder
	for {
		if s.eof() {
			return "", &LexError{Msg: "unterminated string literal", Line: startLine, Col: startCol}
		}
		c := s.advance()
		if c == quote {
			return b.String(), nil
		}
		if c == '\\' {
			if s.eof() {
				return "", &LexError{Msg: "unterminated escape sequence", Line: s.line, Col: s.col}
			}
			e := s.advance()
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\'':
				b.WriteByte('\'')
			case '"':
				b.WriteByte('"')
			default:
				return "", &LexError{Msg: fmt.Sprintf("unrecognized escape sequence '\\%c'", e), Line: s.line, Col: s.col}
			}
			continue
		}
		if c == '\n' || c == '\r' {
			return "", &LexError{Msg: "unexpected end of line inside string literal", Line: s.line, Col: s.col}
		}
		b.WriteByte(c)
	}
}

// scanNumber reads a single run of digits (or the lone digit '0', which may
// not be followed by further digits), plus an optional [eE][+-]?digits
// exponent suffix that is lexically required to be well-formed but has no
// effect on the parsed value — matching lexer.cpp's std::stoi truncation of
// the exponent suffix. Overflowing int32 is a *LexError.
func (s *scanner) scanNumber() (int32, error) {
	line, col := s.line, s.col
	start := s.i

	if !isDigit(s.peek()) {
		return 0, &LexError{Msg: "a digit is expected", Line: line, Col: col}
	}
	if s.peek() == '0' {
		s.advance()
	} else {
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	if s.peek() == 'e' || s.peek() == 'E' {
		s.advance()
		if s.peek() == '+' || s.peek() == '-' {
			s.advance()
		}
		if !isDigit(s.peek()) {
			return 0, &LexError{Msg: "a digit is expected in exponent", Line: s.line, Col: s.col}
		}
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := string(s.src[start:s.i])
	intPart := text
	if idx := strings.IndexAny(text, "eE"); idx >= 0 {
		intPart = text[:idx]
	}
	n, err := strconv.ParseInt(intPart, 10, 32)
	if err != nil {
		return 0, &LexError{Msg: fmt.Sprintf("failed to convert '%s' to a number", text), Line: line, Col: col}
	}
	return int32(n), nil
}

// scanIdentOrKeyword reads a run of bytes that is an identifier or keyword
// spelling. It stops at whitespace, a special-punctuation character, '#',
// EOF, or as soon as the text accumulated so far is itself a recognized
// keyword spelling — so "printX" lexes as Print followed by Id("X").
func (s *scanner) scanIdentOrKeyword() string {
	var b strings.Builder
	for {
		if s.eof() {
			break
		}
		c := s.peek()
		if c == ' ' || c == '\t' || c == '\n' || c == '#' || isSpecialChar(c) {
			break
		}
		if _, ok := keywords[b.String()]; ok {
			break
		}
		b.WriteByte(c)
		s.advance()
	}
	return b.String()
}
