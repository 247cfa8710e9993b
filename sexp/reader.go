package sexp

import (
	"fmt"
	"strconv"
	"strings"
)

// SyntaxError describes a malformed source form.
type SyntaxError struct {
	Offset int // byte offset into the source
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("sexp: offset %d: %s", e.Offset, e.Msg)
}

// Read parses a single expression from src. The whole input must be
// consumed; trailing content after the expression is an error. Line
// comments start with ';' and run to end of line.
func Read(src string) (Exp, error) {
	r := &reader{src: src}
	r.skipSpace()
	e, err := r.readExp()
	if err != nil {
		return nil, err
	}
	r.skipSpace()
	if r.pos != len(src) {
		return nil, &SyntaxError{Offset: r.pos, Msg: "unexpected trailing content"}
	}
	return e, nil
}

type reader struct {
	src string
	pos int
}

func (r *reader) skipSpace() {
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			r.pos++
		case c == ';':
			for r.pos < len(r.src) && r.src[r.pos] != '\n' {
				r.pos++
			}
		default:
			return
		}
	}
}

func (r *reader) readExp() (Exp, error) {
	if r.pos >= len(r.src) {
		return nil, &SyntaxError{Offset: r.pos, Msg: "unexpected end of input"}
	}
	switch r.src[r.pos] {
	case '(':
		return r.readList()
	case ')':
		return nil, &SyntaxError{Offset: r.pos, Msg: "unexpected ')'"}
	case '"':
		return r.readString()
	default:
		return r.readAtom()
	}
}

func (r *reader) readList() (Exp, error) {
	open := r.pos
	r.pos++ // consume '('
	var elems List
	for {
		r.skipSpace()
		if r.pos >= len(r.src) {
			return nil, &SyntaxError{Offset: open, Msg: "unclosed '('"}
		}
		if r.src[r.pos] == ')' {
			r.pos++
			if elems == nil {
				elems = List{}
			}
			return elems, nil
		}
		e, err := r.readExp()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
}

func (r *reader) readString() (Exp, error) {
	open := r.pos
	r.pos++ // consume opening quote
	var b strings.Builder
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		switch c {
		case '"':
			r.pos++
			return String(b.String()), nil
		case '\\':
			r.pos++
			if r.pos >= len(r.src) {
				return nil, &SyntaxError{Offset: open, Msg: "unterminated string"}
			}
			switch r.src[r.pos] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				return nil, &SyntaxError{Offset: r.pos, Msg: fmt.Sprintf("unknown escape %q", r.src[r.pos])}
			}
			r.pos++
		default:
			b.WriteByte(c)
			r.pos++
		}
	}
	return nil, &SyntaxError{Offset: open, Msg: "unterminated string"}
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', '"', ';':
		return true
	}
	return false
}

func (r *reader) readAtom() (Exp, error) {
	start := r.pos
	for r.pos < len(r.src) && !isDelimiter(r.src[r.pos]) {
		r.pos++
	}
	tok := r.src[start:r.pos]
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return Integer(n), nil
	}
	return Symbol(tok), nil
}
