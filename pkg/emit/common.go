package emit

import (
	"fmt"
	"strings"

	"github.com/AbS224/Intent-coding/pkg/ast"
)

// joinParenthesised joins two or more already-rendered sub-expressions
// with sep and wraps the result in parentheses, matching every
// C-family target's rendering of a multi-child And/Or node.
func joinParenthesised(parts []string, sep string) string {
	return "(" + strings.Join(parts, sep) + ")"
}

// joinPlain joins two or more already-rendered sub-expressions with
// sep, unparenthesised — Elixir's "and" binds tighter than "or" so its
// conjunction needs no grouping of its own.
func joinPlain(parts []string, sep string) string {
	return strings.Join(parts, sep)
}

// cLikeRelational renders the six ConstraintOperator values the way
// every target but Ada spells them: >=, <=, >, <, and
// a target-specific pair for = and !=.
func cLikeRelational(op ast.ConstraintOperator, eq, ne string) string {
	switch op {
	case ast.Ge:
		return ">="
	case ast.Le:
		return "<="
	case ast.Gt:
		return ">"
	case ast.Lt:
		return "<"
	case ast.Eq:
		return eq
	case ast.Ne:
		return ne
	default:
		panic(fmt.Sprintf("emit: unknown constraint operator %d", op))
	}
}

// rootAndLeaves returns the leaf Constraints reachable from tree's root
// And node by recursing through nested And children (in left-to-right,
// depth-first order), or nil if the root is not And. Recursion stops at
// an Or or Not child: such a subtree contributes to the postcondition
// instead, never to preconditions. Used by every target whose
// EmitContracts extracts preconditions only from the root conjunction.
func rootAndLeaves(tree ast.CompoundConstraint) []ast.Constraint {
	if tree.Kind() != ast.KindAnd {
		return nil
	}

	var leaves []ast.Constraint
	collectAndLeaves(tree, &leaves)

	return leaves
}

// collectAndLeaves appends node's own leaves, recursing into any And
// child; Or and Not children are left untouched.
func collectAndLeaves(node ast.CompoundConstraint, leaves *[]ast.Constraint) {
	for _, c := range node.Children() {
		switch c.Kind() {
		case ast.KindSimple:
			*leaves = append(*leaves, c.Leaf())
		case ast.KindAnd:
			collectAndLeaves(c, leaves)
		}
	}
}
