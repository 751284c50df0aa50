package emit

import (
	"fmt"

	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
)

// elixirStrategy targets Elixir, whose guard clauses double as both
// the precondition and the dispatch mechanism: a malformed params map
// falls through to a separate function clause rather than raising.
// Uses ==/!=, the "and"/"or" keywords, params[:x] access, the native
// assert macro, and the @spec/is_map guard on the function head.
type elixirStrategy struct{}

func newElixirStrategy() Strategy { return elixirStrategy{} }

func (elixirStrategy) Target() Target { return Elixir }

func (elixirStrategy) MapType(t schema.DataType) string {
	switch t.Tag() {
	case schema.TagUint64, schema.TagUint32, schema.TagInt64, schema.TagInt32:
		return "integer()"
	case schema.TagString:
		return "String.t()"
	case schema.TagBool:
		return "boolean()"
	case schema.TagDecimal:
		return "Decimal.t()"
	default:
		return t.Name()
	}
}

func (elixirStrategy) FormatOperator(op ast.ConstraintOperator) string {
	return cLikeRelational(op, "==", "!=")
}

func (elixirStrategy) FormatVariable(name string) string {
	return "params[:" + name + "]"
}

func (elixirStrategy) LogicalAnd(parts []string) string {
	return joinPlain(parts, " and ")
}

func (elixirStrategy) LogicalOr(parts []string) string {
	return joinParenthesised(parts, " or ")
}

func (elixirStrategy) LogicalNot(expr string) string {
	return "not (" + expr + ")"
}

func (elixirStrategy) WrapAssertion(expr string) string {
	return "assert " + expr
}

func (elixirStrategy) EmitContracts(ast.CompoundConstraint, *schema.Schema, string) (string, bool) {
	return "", false
}

func (elixirStrategy) SafeOp(l string, op ast.ArithmeticOperator, r string, t schema.DataType) string {
	name := map[ast.ArithmeticOperator]string{ast.Add: "add", ast.Sub: "sub", ast.Mul: "mul"}[op]
	return fmt.Sprintf("checked_%s(%s, %s, %d)", name, l, r, t.BitWidth())
}

func (elixirStrategy) EmitPostcondition(string, *schema.Schema) string {
	return ""
}

func (elixirStrategy) BuildSignature(funcName string, sch *schema.Schema, fields []string) string {
	_ = sch
	_ = fields

	return fmt.Sprintf("@spec %s?(map()) :: boolean()\ndef %s?(params) when is_map(params)", funcName, funcName)
}

func (elixirStrategy) LicenseHeader(traceabilityID string) string {
	return fmt.Sprintf("# Generated from traceability id %s. Guard clauses for compile-time pattern matching.", traceabilityID)
}
