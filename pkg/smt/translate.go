package smt

import (
	"fmt"

	"github.com/AbS224/Intent-coding/pkg/ast"
)

// symbolTable caches declared integer symbols for a single translation
// call, so that shared names share declarations.
type symbolTable struct {
	order []string
	seen  map[string]bool
}

func newSymbolTable() *symbolTable {
	return &symbolTable{seen: make(map[string]bool)}
}

// declare registers name (sanitized to a legal SMT-LIB simple symbol)
// and returns the sanitized form every Term referencing this variable
// must use, so declarations and uses always agree.
func (s *symbolTable) declare(name string) string {
	sanitized := sanitizeSymbol(name)

	if !s.seen[sanitized] {
		s.seen[sanitized] = true
		s.order = append(s.order, sanitized)
	}

	return sanitized
}

// translateOperator maps ast.ConstraintOperator to the matching RelOp.
func translateOperator(op ast.ConstraintOperator) RelOp {
	switch op {
	case ast.Ge:
		return OpGe
	case ast.Le:
		return OpLe
	case ast.Gt:
		return OpGt
	case ast.Lt:
		return OpLt
	case ast.Eq:
		return OpEq
	case ast.Ne:
		return OpNe
	default:
		panic(fmt.Sprintf("smt: unknown constraint operator %v", op))
	}
}

// termFor resolves a leaf operand (either side of a Constraint) to an
// SMT term, declaring a fresh symbol in syms when the operand is not a
// literal.
func termFor(value string, syms *symbolTable) Term {
	var c ast.Constraint // only used for its lazy literal parse helper
	c.RightValue = value

	if lit, ok := c.RightLiteral(); ok {
		return Lit(lit)
	}

	return Sym(syms.declare(value))
}

// translateLeaf translates a single Constraint into a Formula, also
// declaring its left_variable and (if non-literal) right_value symbols.
func translateLeaf(c ast.Constraint, syms *symbolTable) Formula {
	left := Sym(syms.declare(c.LeftVariable))
	right := termFor(c.RightValue, syms)

	return NewPred(translateOperator(c.Operator), left, right)
}

// translateTree walks a CompoundConstraint post-order, recursing once
// per tree level (it uses no explicit work-list), producing the
// matching Formula and declaring every symbol it encounters along the
// way.
//
// translateTree panics if it is given an And/Or node with zero
// children — a pre-emission sanity check, since ast.And/ast.Or already
// refuse to construct such a node. Reaching this panic means a
// CompoundConstraint value was built by means other than this
// package's constructors.
func translateTree(root ast.CompoundConstraint, syms *symbolTable) Formula {
	switch root.Kind() {
	case ast.KindSimple:
		return translateLeaf(root.Leaf(), syms)
	case ast.KindNot:
		return NewNot(translateTree(root.Children()[0], syms))
	case ast.KindAnd:
		return FoldAnd(translateChildren(root.Children(), syms))
	case ast.KindOr:
		return FoldOr(translateChildren(root.Children(), syms))
	default:
		panic("smt: unknown compound constraint kind")
	}
}

func translateChildren(children []ast.CompoundConstraint, syms *symbolTable) []Formula {
	if len(children) == 0 {
		panic("smt: empty And/Or reached the translator; callers must normalise before construction")
	}

	out := make([]Formula, len(children))

	for i, c := range children {
		out[i] = translateTree(c, syms)
	}

	return out
}
