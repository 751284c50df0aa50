package emit

import (
	"fmt"
	"strings"

	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
)

// rustStrategy targets Rust, favouring debug-time assertions and a
// checked-arithmetic idiom over any runtime overflow trap: ==/!=,
// &&/||, params.x field access, and debug_assert! for runtime checks,
// plus a Kani proof harness trailer.
type rustStrategy struct{}

func newRustStrategy() Strategy { return rustStrategy{} }

func (rustStrategy) Target() Target { return Rust }

func (rustStrategy) MapType(t schema.DataType) string {
	switch t.Tag() {
	case schema.TagUint64:
		return "u64"
	case schema.TagUint32:
		return "u32"
	case schema.TagInt64:
		return "i64"
	case schema.TagInt32:
		return "i32"
	case schema.TagString:
		return "String"
	case schema.TagBool:
		return "bool"
	case schema.TagDecimal:
		return "rust_decimal::Decimal"
	default:
		return t.Name()
	}
}

func (rustStrategy) FormatOperator(op ast.ConstraintOperator) string {
	return cLikeRelational(op, "==", "!=")
}

func (rustStrategy) FormatVariable(name string) string {
	return "params." + name
}

func (rustStrategy) LogicalAnd(parts []string) string { return joinParenthesised(parts, " && ") }
func (rustStrategy) LogicalOr(parts []string) string  { return joinParenthesised(parts, " || ") }

func (rustStrategy) LogicalNot(expr string) string {
	return "!(" + expr + ")"
}

func (rustStrategy) WrapAssertion(expr string) string {
	return fmt.Sprintf("debug_assert!(%s);", expr)
}

func (rustStrategy) EmitContracts(ast.CompoundConstraint, *schema.Schema, string) (string, bool) {
	return "", false
}

func (rustStrategy) SafeOp(l string, op ast.ArithmeticOperator, r string, t schema.DataType) string {
	name := map[ast.ArithmeticOperator]string{ast.Add: "add", ast.Sub: "sub", ast.Mul: "mul"}[op]
	return fmt.Sprintf("%s.checked_%s(%s).expect(\"arithmetic overflow\")", l, name, r)
}

func (rustStrategy) EmitPostcondition(string, *schema.Schema) string {
	return ""
}

func (s rustStrategy) BuildSignature(funcName string, sch *schema.Schema, fields []string) string {
	var b strings.Builder

	b.WriteString("#[derive(Debug, Clone)]\npub struct ValidationParams {\n")

	for _, f := range fields {
		t, _ := sch.GetType(f)
		fmt.Fprintf(&b, "    pub %s: %s,\n", f, s.MapType(t))
	}

	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "pub fn %s(params: &ValidationParams) -> bool", funcName)

	return b.String()
}

func (rustStrategy) LicenseHeader(traceabilityID string) string {
	return fmt.Sprintf("//! Generated from traceability id %s. Use with Kani for bounded model checking.", traceabilityID)
}
