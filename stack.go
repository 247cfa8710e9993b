package sxui

import (
	"sxui/sexp"
)

// buildStack parses (stack direction (constraint content)...).
func buildStack(e sexp.Exp) (Tree, error) {
	elems, err := asListMin(e, 3)
	if err != nil {
		return nil, err
	}
	if err := wantSymbol(elems[0], "stack"); err != nil {
		return nil, err
	}

	dir, err := buildDirection(elems[1])
	if err != nil {
		return nil, err
	}

	stackElems := make([]StackElement, 0, len(elems)-2)
	for _, sub := range elems[2:] {
		el, err := buildStackElement(sub)
		if err != nil {
			return nil, err
		}
		stackElems = append(stackElems, el)
	}

	return Stack{Direction: dir, Elements: stackElems}, nil
}

// buildDirection parses the horizontal/vertical axis symbol. Any other
// symbol is an invalid-direction error carrying the raw name.
func buildDirection(e sexp.Exp) (Direction, error) {
	name, ok := sexp.AsSymbol(e)
	if !ok {
		return Vertical, &BuildError{Kind: ErrExpectedSymbol, Detail: "horizontal | vertical", Exp: e}
	}
	switch name {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Vertical, &BuildError{Kind: ErrInvalidDirection, Detail: name, Exp: e}
}

// buildStackElement parses a (constraint content) pair.
func buildStackElement(e sexp.Exp) (StackElement, error) {
	elems, err := asListLen(e, 2)
	if err != nil {
		return StackElement{}, err
	}

	c, err := buildConstraint(elems[0])
	if err != nil {
		return StackElement{}, err
	}
	content, err := Build(elems[1])
	if err != nil {
		return StackElement{}, err
	}

	return StackElement{Constraint: c, Content: content}, nil
}

// buildConstraint parses a (kind integer) sizing directive.
func buildConstraint(e sexp.Exp) (Constraint, error) {
	elems, err := asListLen(e, 2)
	if err != nil {
		return Constraint{}, err
	}

	name, ok := sexp.AsSymbol(elems[0])
	if !ok {
		return Constraint{}, &BuildError{Kind: ErrExpectedSymbol, Detail: "length | min | max | percentage | fill", Exp: e}
	}

	var kind ConstraintKind
	switch name {
	case "length":
		kind = Length
	case "min":
		kind = Min
	case "max":
		kind = Max
	case "percentage":
		kind = Percentage
	case "fill":
		kind = Fill
	default:
		return Constraint{}, &BuildError{Kind: ErrExpectedSymbol, Detail: "length | min | max | percentage | fill", Exp: e}
	}

	value, err := asInteger(elems[1])
	if err != nil {
		return Constraint{}, err
	}

	return Constraint{Kind: kind, Value: int(value)}, nil
}
