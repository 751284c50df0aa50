package emit

import (
	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
)

// Strategy bundles the twelve per-target decisions an Orchestrator
// needs to compose verified source text. Extending the Target
// enumeration to add an eighth backend means writing one new Strategy
// implementation and registering it with an Orchestrator — never
// editing the Orchestrator's Emit method itself.
type Strategy interface {
	// Target identifies which backend this strategy renders.
	Target() Target

	// MapType is a total function from DataType to this target's
	// native high-integrity type name; custom types pass through by
	// name, integer widths map to the nearest native type with width
	// at least the declared width.
	MapType(t schema.DataType) string

	// FormatOperator renders a ConstraintOperator in target syntax.
	FormatOperator(op ast.ConstraintOperator) string

	// FormatVariable renders a target-idiomatic path access for a
	// schema field (e.g. "params.x", "Params.X").
	FormatVariable(name string) string

	// LogicalAnd joins two or more already-rendered sub-expressions
	// with this target's conjunction connective.
	LogicalAnd(parts []string) string

	// LogicalOr joins two or more already-rendered sub-expressions
	// with this target's disjunction connective.
	LogicalOr(parts []string) string

	// LogicalNot wraps an already-rendered sub-expression in this
	// target's negation syntax. It always re-parenthesises its
	// argument.
	LogicalNot(expr string) string

	// WrapAssertion renders this target's runtime-check syntax around
	// an already-rendered boolean expression.
	WrapAssertion(expr string) string

	// EmitContracts optionally renders an ordered block of
	// precondition clauses (one per leaf of the root And only;
	// Or/Not subtrees go to the postcondition) plus one postcondition
	// relating the function result to the full expression. The second
	// return value is false for targets with no native contract
	// syntax.
	EmitContracts(tree ast.CompoundConstraint, sch *schema.Schema, fullExpr string) (string, bool)

	// SafeOp renders overflow-checked arithmetic for integer-typed
	// operands.
	SafeOp(l string, op ast.ArithmeticOperator, r string, t schema.DataType) string

	// EmitPostcondition renders a target-native postcondition
	// associating the function's return value with expr.
	EmitPostcondition(expr string, sch *schema.Schema) string

	// BuildSignature renders the function/type declaration built from
	// the schema's fields, in insertion order.
	BuildSignature(funcName string, sch *schema.Schema, fields []string) string

	// LicenseHeader renders this target's comment-syntax header
	// embedding the schema's traceability id.
	LicenseHeader(traceabilityID string) string
}
