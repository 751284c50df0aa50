package emit

import (
	"fmt"
	"strings"

	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
)

// adaStrategy targets SPARK/Ada, the one backend with native
// precondition/postcondition aspects, suitable for GNATprove's
// mathematical verification rather than a runtime check alone: uses
// PascalCase "Params.Field" access, "and then"/"or else", =//=, pragma
// Assert for the runtime layer, and a `with` aspect clause carrying
// Pre/Post. Each precondition string carries the "Pre  => " prefix a
// GNATprove-readable aspect clause requires.
type adaStrategy struct{}

func newAdaStrategy() Strategy { return adaStrategy{} }

func (adaStrategy) Target() Target { return Ada }

func (adaStrategy) MapType(t schema.DataType) string {
	switch t.Tag() {
	case schema.TagUint64, schema.TagUint32:
		return "Natural"
	case schema.TagInt64, schema.TagInt32:
		return "Integer"
	case schema.TagString:
		return "String"
	case schema.TagBool:
		return "Boolean"
	case schema.TagDecimal:
		return "Long_Float"
	default:
		return t.Name()
	}
}

func (adaStrategy) FormatOperator(op ast.ConstraintOperator) string {
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
		return "="
	case ast.Ne:
		return "/="
	default:
		panic(fmt.Sprintf("emit: unknown constraint operator %d", op))
	}
}

func (adaStrategy) FormatVariable(name string) string {
	return "Params." + toAdaCase(name)
}

func (adaStrategy) LogicalAnd(parts []string) string { return joinParenthesised(parts, " and then ") }
func (adaStrategy) LogicalOr(parts []string) string  { return joinParenthesised(parts, " or else ") }

func (adaStrategy) LogicalNot(expr string) string {
	return "not (" + expr + ")"
}

func (adaStrategy) WrapAssertion(expr string) string {
	return fmt.Sprintf("pragma Assert (%s);", expr)
}

// EmitContracts extracts one precondition per leaf reachable from the
// root by recursing through nested And nodes; an Or or Not anywhere in
// that traversal contributes nothing to the precondition list. Always
// attaches one postcondition relating the result to the full
// expression.
func (s adaStrategy) EmitContracts(tree ast.CompoundConstraint, sch *schema.Schema, fullExpr string) (string, bool) {
	_ = sch

	var b strings.Builder

	for _, leaf := range rootAndLeaves(tree) {
		fmt.Fprintf(&b, ",\n        Pre  => %s %s %s", s.FormatVariable(leaf.LeftVariable), s.FormatOperator(leaf.Operator), renderOperand(leaf.RightValue, s))
	}

	fmt.Fprintf(&b, ",\n        Post => (Result = %s)", fullExpr)

	return b.String(), true
}

func (adaStrategy) SafeOp(l string, op ast.ArithmeticOperator, r string, t schema.DataType) string {
	_ = t
	return fmt.Sprintf("%s %s %s", l, op, r)
}

func (adaStrategy) EmitPostcondition(string, *schema.Schema) string {
	return ""
}

func (adaStrategy) BuildSignature(funcName string, sch *schema.Schema, fields []string) string {
	_ = sch
	_ = fields

	return fmt.Sprintf("function %s (Params : Validation_Params) return Boolean\n   with SPARK_Mode => On", funcName)
}

func (adaStrategy) LicenseHeader(traceabilityID string) string {
	return fmt.Sprintf("-- Generated from traceability id %s. Use GNATprove for mathematical verification: gnatprove -P<project> --level=4", traceabilityID)
}

// toAdaCase renders a snake_case identifier in Ada's
// Each_Word_Capitalised convention.
func toAdaCase(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}

		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}

	return strings.Join(words, "_")
}
