package emit

import (
	"strings"

	"github.com/AbS224/Intent-coding/pkg/ast"
)

// renderOperand renders one side of a Constraint: a decimal literal is
// emitted verbatim, a synthetic parenthesised arithmetic placeholder
// (produced by the parser adapter for arithmetic_expression nodes, see
// pkg/parser) is emitted verbatim since it is already a self-contained
// textual placeholder rather than a schema field, and any other
// identifier is run through the strategy's variable-access formatter.
func renderOperand(value string, strategy Strategy) string {
	if strings.HasPrefix(value, "(") && strings.HasSuffix(value, ")") {
		return value
	}

	var probe ast.Constraint
	probe.RightValue = value

	if _, ok := probe.RightLiteral(); ok {
		return value
	}

	return strategy.FormatVariable(value)
}

// renderLeaf renders one Constraint as "left OP right" in target
// syntax.
func renderLeaf(c ast.Constraint, strategy Strategy) string {
	return strategy.FormatVariable(c.LeftVariable) + " " + strategy.FormatOperator(c.Operator) + " " + renderOperand(c.RightValue, strategy)
}

// BuildExpression renders the full boolean expression for tree using
// strategy's operator, variable, and connective formatters. And children are joined by LogicalAnd, Or children by
// LogicalOr; Not wraps its child in LogicalNot.
func BuildExpression(tree ast.CompoundConstraint, strategy Strategy) string {
	switch tree.Kind() {
	case ast.KindSimple:
		return renderLeaf(tree.Leaf(), strategy)
	case ast.KindNot:
		return strategy.LogicalNot(BuildExpression(tree.Children()[0], strategy))
	case ast.KindAnd:
		return strategy.LogicalAnd(buildChildExpressions(tree.Children(), strategy))
	case ast.KindOr:
		return strategy.LogicalOr(buildChildExpressions(tree.Children(), strategy))
	default:
		panic("emit: unknown compound constraint kind")
	}
}

func buildChildExpressions(children []ast.CompoundConstraint, strategy Strategy) []string {
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = BuildExpression(c, strategy)
	}

	return out
}

// BuildAssertions renders one WrapAssertion per Simple leaf, visited
// left-to-right. Not does not invert leaves for
// the purpose of assertions — the assertion records the leaf condition
// itself; the top-level expression already encodes negation.
func BuildAssertions(tree ast.CompoundConstraint, strategy Strategy) []string {
	var out []string

	ast.ForEachLeaf(tree, func(c ast.Constraint) {
		out = append(out, strategy.WrapAssertion(renderLeaf(c, strategy)))
	})

	return out
}
