package parser

import (
	"fmt"

	"github.com/AbS224/Intent-coding/pkg/ast"
)

// MalformedRequirementError reports a requirement node missing a
// subject or action child, identified by its byte range in the
// original source.
type MalformedRequirementError struct {
	Range ByteRange
}

func (e *MalformedRequirementError) Error() string {
	return fmt.Sprintf("parser: malformed requirement at bytes [%d,%d): missing subject or action",
		e.Range.Start, e.Range.End)
}

// UnknownOperatorTokenError reports a comparison_operator node whose
// text does not match any of {>=, <=, >, <, =, ==, !=, <>}.
type UnknownOperatorTokenError struct {
	Token string
}

func (e *UnknownOperatorTokenError) Error() string {
	return fmt.Sprintf("parser: unknown operator token %q", e.Token)
}

// operatorFromToken maps a comparison_operator node's text onto a
// ConstraintOperator.
func operatorFromToken(tok string) (ast.ConstraintOperator, error) {
	switch tok {
	case ">=":
		return ast.Ge, nil
	case "<=":
		return ast.Le, nil
	case ">":
		return ast.Gt, nil
	case "<":
		return ast.Lt, nil
	case "=", "==":
		return ast.Eq, nil
	case "!=", "<>":
		return ast.Ne, nil
	default:
		return 0, &UnknownOperatorTokenError{Token: tok}
	}
}

// FromCST walks a requirement CST node and produces the corresponding
// Requirement together with the full CompoundConstraint tree preserving
// the source's logical nesting. The tree is what callers hand to the
// SMT translator (C4) and emitter (C5/C6); the flat list on Requirement
// is bookkeeping only.
//
// When a requirement has more than one top-level condition, they are
// implicitly conjoined (And) into a single tree, since a requirement
// holds as true only when every one of its stated conditions holds.
//
// It is pure data mapping: it performs no semantic analysis beyond the
// structural translation from CST shape to AST shape.
func FromCST(node Node) (ast.Requirement, ast.CompoundConstraint, error) {
	var zero ast.CompoundConstraint

	if node.Kind != KindRequirement {
		return ast.Requirement{}, zero, fmt.Errorf("parser: FromCST expects a %q node, got %q", KindRequirement, node.Kind)
	}

	subject := node.Child(KindSubject)
	action := node.Child(KindAction)

	if subject == nil || action == nil {
		return ast.Requirement{}, zero, &MalformedRequirementError{Range: node.Span}
	}

	req := ast.NewRequirement(requirementText(node))

	conditions := node.ChildrenOf(KindCondition)
	trees := make([]ast.CompoundConstraint, 0, len(conditions))

	for _, cond := range conditions {
		tree, err := compoundFromNode(cond)
		if err != nil {
			return ast.Requirement{}, zero, err
		}

		trees = append(trees, tree)
	}

	if len(trees) == 0 {
		return req, zero, nil
	}

	combined := trees[0]
	if len(trees) > 1 {
		combined = ast.And(trees...)
	}

	ast.ForEachLeaf(combined, func(c ast.Constraint) {
		req.Constraints = append(req.Constraints, c)
	})

	return req, combined, nil
}

// requirementText reconstructs a human-readable summary from the
// subject/modal_verb/action/object/preposition_phrase children, falling
// back to an empty string when those children are absent.
func requirementText(node Node) string {
	var text string

	for _, kind := range []NodeKind{KindSubject, KindModalVerb, KindAction, KindObject, KindPrepositionPhrase} {
		if c := node.Child(kind); c != nil {
			if text != "" {
				text += " "
			}

			text += c.Text
		}
	}

	return text
}

// compoundFromNode walks a condition/constraint_expression subtree,
// producing the matching CompoundConstraint. Nesting depth is
// preserved — associativity is never flattened at parse time.
func compoundFromNode(node Node) (ast.CompoundConstraint, error) {
	switch node.Kind {
	case KindCondition, KindConstraintExpression:
		if len(node.Children) == 0 {
			return ast.CompoundConstraint{}, fmt.Errorf("parser: empty %q node", node.Kind)
		}

		return compoundFromNode(node.Children[0])
	case KindComparison:
		return compoundFromComparison(node)
	case KindLogicalExpression:
		return compoundFromLogical(node)
	case KindArithmeticExpression:
		return compoundFromArithmetic(node)
	default:
		return ast.CompoundConstraint{}, fmt.Errorf("parser: unexpected node kind %q in constraint position", node.Kind)
	}
}

// compoundFromComparison becomes Simple(Constraint{left, op, right}).
func compoundFromComparison(node Node) (ast.CompoundConstraint, error) {
	left := node.Child(KindLeftExpression)
	opNode := node.Child(KindComparisonOperator)
	right := node.Child(KindRightExpression)

	if left == nil || opNode == nil || right == nil {
		return ast.CompoundConstraint{}, fmt.Errorf("parser: comparison node missing an operand or operator")
	}

	op, err := operatorFromToken(opNode.Text)
	if err != nil {
		return ast.CompoundConstraint{}, err
	}

	return ast.Simple(ast.NewConstraint(leafText(*left), op, leafText(*right))), nil
}

// leafText extracts the literal text of a left_expression/right_expression
// node, descending into its sole variable/number child if present.
func leafText(node Node) string {
	if v := node.Child(KindVariable); v != nil {
		return v.Text
	}

	if n := node.Child(KindNumber); n != nil {
		return n.Text
	}

	return node.Text
}

// compoundFromLogical becomes the matching And/Or/Not compound.
func compoundFromLogical(node Node) (ast.CompoundConstraint, error) {
	switch node.Tag {
	case KindAnd, KindOr:
		if len(node.Children) < 2 {
			return ast.CompoundConstraint{}, fmt.Errorf("parser: %q logical_expression needs at least two operands", node.Tag)
		}

		children := make([]ast.CompoundConstraint, len(node.Children))

		for i, c := range node.Children {
			child, err := compoundFromNode(c)
			if err != nil {
				return ast.CompoundConstraint{}, err
			}

			children[i] = child
		}

		if node.Tag == KindAnd {
			return ast.And(children...), nil
		}

		return ast.Or(children...), nil
	case KindNot:
		if len(node.Children) != 1 {
			return ast.CompoundConstraint{}, fmt.Errorf("parser: %q logical_expression needs exactly one operand", KindNot)
		}

		child, err := compoundFromNode(node.Children[0])
		if err != nil {
			return ast.CompoundConstraint{}, err
		}

		return ast.Not(child), nil
	default:
		return ast.CompoundConstraint{}, fmt.Errorf("parser: logical_expression has unknown tag %q", node.Tag)
	}
}

// compoundFromArithmetic becomes a Simple node with operator Eq and a
// synthetic right value expressed as a parenthesised variable
// reference. Richer arithmetic is a documented future extension
//: this package never promotes it to a first-class
// AST form.
func compoundFromArithmetic(node Node) (ast.CompoundConstraint, error) {
	left := node.Child(KindLeftExpression)
	if left == nil {
		return ast.CompoundConstraint{}, fmt.Errorf("parser: arithmetic_expression missing left operand")
	}

	synthetic := fmt.Sprintf("(%s)", leafText(node))

	return ast.Simple(ast.NewConstraint(leafText(*left), ast.Eq, synthetic)), nil
}
