// Package sexp provides immutable symbolic-expression values and a reader
// for their parenthesized source form.
//
// An expression is one of four shapes: an integer, a string, a symbol, or an
// ordered list of expressions. Values are plain Go data and are treated as
// read-only once constructed.
package sexp

import (
	"strconv"
	"strings"
)

// Exp is a symbolic-expression value.
type Exp interface {
	// String renders the printed form of the expression. Strings and
	// symbols render bare (no quotes), lists parenthesized with single
	// spaces between elements.
	String() string

	exp()
}

// Integer is a signed integer expression.
type Integer int64

// String is a string literal expression.
type String string

// Symbol is a bare identifier expression.
type Symbol string

// List is an ordered sequence of expressions.
type List []Exp

func (Integer) exp() {}
func (String) exp()  {}
func (Symbol) exp()  {}
func (List) exp()    {}

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }
func (s String) String() string  { return string(s) }
func (s Symbol) String() string  { return string(s) }

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// AsList returns the elements of a list expression.
func AsList(e Exp) (List, bool) {
	l, ok := e.(List)
	return l, ok
}

// AsSymbol returns the name of a symbol expression.
func AsSymbol(e Exp) (string, bool) {
	s, ok := e.(Symbol)
	return string(s), ok
}

// AsString returns the content of a string expression.
func AsString(e Exp) (string, bool) {
	s, ok := e.(String)
	return string(s), ok
}

// AsInteger returns the value of an integer expression.
func AsInteger(e Exp) (int64, bool) {
	i, ok := e.(Integer)
	return int64(i), ok
}
