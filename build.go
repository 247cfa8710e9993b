package sxui

import (
	"fmt"

	"sxui/sexp"
)

// ErrorKind classifies why an expression could not become a render tree.
type ErrorKind int

const (
	ErrExpectedList ErrorKind = iota
	ErrExpectedSymbol
	ErrExpectedString
	ErrExpectedInteger
	ErrInvalidLength
	ErrInvalidDirection
)

// BuildError is returned when an expression matches a block or stack shape
// but fails its validation. It carries the offending sub-expression for
// diagnostics.
type BuildError struct {
	Kind   ErrorKind
	Detail string   // accepted symbols, or the raw direction name
	Exp    sexp.Exp // offending sub-expression
}

func (e *BuildError) Error() string {
	switch e.Kind {
	case ErrExpectedList:
		return fmt.Sprintf("expected list, got %s", e.Exp)
	case ErrExpectedSymbol:
		return fmt.Sprintf("expected symbol %s, got %s", e.Detail, e.Exp)
	case ErrExpectedString:
		return fmt.Sprintf("expected string, got %s", e.Exp)
	case ErrExpectedInteger:
		return fmt.Sprintf("expected integer, got %s", e.Exp)
	case ErrInvalidLength:
		return fmt.Sprintf("wrong number of elements in %s", e.Exp)
	case ErrInvalidDirection:
		return fmt.Sprintf("invalid direction %q", e.Detail)
	}
	return fmt.Sprintf("invalid expression %s", e.Exp)
}

// asList returns the elements of a list expression.
func asList(e sexp.Exp) (sexp.List, error) {
	elems, ok := sexp.AsList(e)
	if !ok {
		return nil, &BuildError{Kind: ErrExpectedList, Exp: e}
	}
	return elems, nil
}

// asListLen returns the elements of a list with exactly n elements.
func asListLen(e sexp.Exp, n int) (sexp.List, error) {
	elems, err := asList(e)
	if err != nil {
		return nil, err
	}
	if len(elems) != n {
		return nil, &BuildError{Kind: ErrInvalidLength, Exp: e}
	}
	return elems, nil
}

// asListMin returns the elements of a list with at least n elements.
func asListMin(e sexp.Exp, n int) (sexp.List, error) {
	elems, err := asList(e)
	if err != nil {
		return nil, err
	}
	if len(elems) < n {
		return nil, &BuildError{Kind: ErrInvalidLength, Exp: e}
	}
	return elems, nil
}

// wantSymbol checks that e is a symbol with one of the given names.
func wantSymbol(e sexp.Exp, names ...string) error {
	got, ok := sexp.AsSymbol(e)
	if ok {
		for _, name := range names {
			if got == name {
				return nil
			}
		}
	}
	detail := ""
	for i, name := range names {
		if i > 0 {
			detail += " | "
		}
		detail += name
	}
	return &BuildError{Kind: ErrExpectedSymbol, Detail: detail, Exp: e}
}

// asInteger returns the value of an integer expression.
func asInteger(e sexp.Exp) (int64, error) {
	n, ok := sexp.AsInteger(e)
	if !ok {
		return 0, &BuildError{Kind: ErrExpectedInteger, Exp: e}
	}
	return n, nil
}

// Build converts an expression into a render tree.
//
// The block, stack and text builders are tried in that fixed order and the
// first success wins. Text stringifies any expression and never fails, so a
// malformed block or stack shape falls through and is reinterpreted as
// literal text instead of surfacing its original error. This leniency is
// deliberate for compatibility with the expression grammar as deployed; do
// not change the order.
func Build(e sexp.Exp) (Tree, error) {
	if t, err := buildBlock(e); err == nil {
		return t, nil
	}
	if t, err := buildStack(e); err == nil {
		return t, nil
	}
	return buildText(e)
}

// buildText stringifies any expression into a text leaf. It is the terminal
// fallback of the resolution chain and cannot fail.
func buildText(e sexp.Exp) (Tree, error) {
	return Text{Content: e.String()}, nil
}

// BuildLayer converts a (layer ui...) expression into an ordered layer of
// render trees. Unlike Build there is no fallback: a malformed layer or any
// failing child is an error.
func BuildLayer(e sexp.Exp) (*Layer, error) {
	elems, err := asListMin(e, 2)
	if err != nil {
		return nil, err
	}
	if err := wantSymbol(elems[0], "layer"); err != nil {
		return nil, err
	}
	layer := &Layer{}
	for _, sub := range elems[1:] {
		t, err := Build(sub)
		if err != nil {
			return nil, err
		}
		layer.Add(t)
	}
	return layer, nil
}
