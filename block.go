package sxui

import (
	"sxui/sexp"
)

// buildBlock parses (block title content) or (block title content style).
// The title is stringified from whatever expression sits in position one; it
// does not have to be a string literal.
func buildBlock(e sexp.Exp) (Tree, error) {
	elems, err := asListMin(e, 3)
	if err != nil {
		return nil, err
	}
	if err := wantSymbol(elems[0], "block"); err != nil {
		return nil, err
	}

	content, err := Build(elems[2])
	if err != nil {
		return nil, err
	}

	style := BlockStyle{}
	if len(elems) > 3 {
		style, err = buildStyle(elems[3])
		if err != nil {
			return nil, err
		}
	}

	return Block{Title: elems[1].String(), Style: style, Content: content}, nil
}

// buildStyle parses (style clause...). The container shape is validated,
// but each clause is best effort: a clause that matches neither the title
// alignment nor the borders parser is silently skipped rather than failing
// the enclosing block. Later clauses of the same kind replace earlier ones.
func buildStyle(e sexp.Exp) (BlockStyle, error) {
	style := BlockStyle{}
	elems, err := asListMin(e, 2)
	if err != nil {
		return style, err
	}
	if err := wantSymbol(elems[0], "style"); err != nil {
		return style, err
	}

	for _, clause := range elems[1:] {
		if align, err := buildTitleAlign(clause); err == nil {
			style.TitleAlign = align
		}
		if edges, err := buildBorders(clause); err == nil {
			style.Borders = edges
		}
	}

	return style, nil
}

// buildTitleAlign parses (title_align left|center|right). Both the
// underscore and hyphen spellings of the head symbol are accepted.
func buildTitleAlign(e sexp.Exp) (TitleAlign, error) {
	elems, err := asListLen(e, 2)
	if err != nil {
		return AlignLeft, err
	}
	if err := wantSymbol(elems[0], "title_align", "title-align"); err != nil {
		return AlignLeft, err
	}

	name, _ := sexp.AsSymbol(elems[1])
	switch name {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, &BuildError{Kind: ErrExpectedSymbol, Detail: "left | center | right", Exp: e}
}

// buildBorders parses (border none|left|right|top|bottom|all). Both the
// singular and plural spellings of the head symbol are accepted.
func buildBorders(e sexp.Exp) (Borders, error) {
	elems, err := asListLen(e, 2)
	if err != nil {
		return BordersNone, err
	}
	if err := wantSymbol(elems[0], "border", "borders"); err != nil {
		return BordersNone, err
	}

	name, _ := sexp.AsSymbol(elems[1])
	switch name {
	case "none":
		return BordersNone, nil
	case "left":
		return BorderLeft, nil
	case "right":
		return BorderRight, nil
	case "top":
		return BorderTop, nil
	case "bottom":
		return BorderBottom, nil
	case "all":
		return BordersAll, nil
	}
	return BordersNone, &BuildError{Kind: ErrExpectedSymbol, Detail: "none | left | right | top | bottom | all", Exp: e}
}
