package rpncalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal literal. Its text is not validated.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is an open bracket, (.
	tokenOpen
	// tokenClose is a close bracket, ).
	tokenClose
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.1.0 -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

type lexer struct {
	src    io.RuneReader
	buf    strings.Builder
	rune   int
	strict bool
	toks   []lexToken
	// start is the position of the first rune in buf.
	start int
}

// tokenize scans all of src. Digits and periods accumulate into numbers. Any
// other rune ends the number being scanned, if any. Operators and brackets
// become tokens of their own; everything else is dropped unless strict is
// set, in which case runes that are not whitespace are errors. The result
// always ends with an EOF token.
func tokenize(src io.RuneReader, strict bool) ([]lexToken, error) {
	l := lexer{src: src, strict: strict}
	for {
		r, sz, err := l.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.flush()
				l.toks = append(l.toks, lexToken{kind: tokenEOF, pos: l.rune + 1})
				return l.toks, nil
			}
			return nil, err
		}
		if sz > 0 {
			l.rune++
		}
		if '0' <= r && r <= '9' || r == '.' {
			if l.buf.Len() == 0 {
				l.start = l.rune
			}
			l.buf.WriteRune(r)
			continue
		}
		l.flush()
		switch {
		case strings.ContainsRune(Operators, r):
			l.emit(tokenOp, string(r))
		case r == '(':
			l.emit(tokenOpen, "(")
		case r == ')':
			l.emit(tokenClose, ")")
		case l.strict && !unicode.IsSpace(r):
			return nil, &LexError{Text: string(r), Col: l.rune}
		}
	}
}

// flush emits the pending number, if there is one.
func (l *lexer) flush() {
	if l.buf.Len() == 0 {
		return
	}
	l.toks = append(l.toks, lexToken{text: l.buf.String(), kind: tokenNum, pos: l.start})
	l.buf.Reset()
}

func (l *lexer) emit(kind tokenKind, text string) {
	l.toks = append(l.toks, lexToken{text: text, kind: kind, pos: l.rune})
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the invalid token. For unrecognized characters, this is the
	// character alone.
	Text string
	// Kind is the type of token that was invalid. This is "number" for
	// literals which do not parse as numbers, or the empty string for
	// unrecognized characters.
	Kind string
	// Col is the position of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// Unwrap returns ErrNumber for invalid numbers and ErrCharacter otherwise.
func (err *LexError) Unwrap() error {
	if err.Kind == "number" {
		return ErrNumber
	}
	return ErrCharacter
}
