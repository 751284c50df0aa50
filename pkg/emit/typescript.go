package emit

import (
	"fmt"
	"strings"

	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
)

// typeScriptStrategy targets TypeScript: ===/!==, &&/||, params.x
// field access, no native contract syntax, and an interface plus a
// class carrying a single static method.
type typeScriptStrategy struct{}

func newTypeScriptStrategy() Strategy { return typeScriptStrategy{} }

func (typeScriptStrategy) Target() Target { return TypeScript }

func (typeScriptStrategy) MapType(t schema.DataType) string {
	switch t.Tag() {
	case schema.TagUint64, schema.TagInt64:
		return "bigint"
	case schema.TagUint32, schema.TagInt32:
		return "number"
	case schema.TagString:
		return "string"
	case schema.TagBool:
		return "boolean"
	case schema.TagDecimal:
		return "string"
	default:
		return t.Name()
	}
}

func (typeScriptStrategy) FormatOperator(op ast.ConstraintOperator) string {
	return cLikeRelational(op, "===", "!==")
}

func (typeScriptStrategy) FormatVariable(name string) string {
	return "params." + name
}

func (typeScriptStrategy) LogicalAnd(parts []string) string { return joinParenthesised(parts, " && ") }
func (typeScriptStrategy) LogicalOr(parts []string) string  { return joinParenthesised(parts, " || ") }

func (typeScriptStrategy) LogicalNot(expr string) string {
	return "!(" + expr + ")"
}

func (typeScriptStrategy) WrapAssertion(expr string) string {
	return fmt.Sprintf("console.assert(%s);", expr)
}

func (typeScriptStrategy) EmitContracts(ast.CompoundConstraint, *schema.Schema, string) (string, bool) {
	return "", false
}

func (typeScriptStrategy) SafeOp(l string, op ast.ArithmeticOperator, r string, t schema.DataType) string {
	name := map[ast.ArithmeticOperator]string{ast.Add: "Add", ast.Sub: "Sub", ast.Mul: "Mul"}[op]
	return fmt.Sprintf("checked%s(%s, %s, %d)", name, l, r, t.BitWidth())
}

func (typeScriptStrategy) EmitPostcondition(string, *schema.Schema) string {
	return ""
}

func (s typeScriptStrategy) BuildSignature(funcName string, sch *schema.Schema, fields []string) string {
	var b strings.Builder

	b.WriteString("export interface ValidationParams {\n")

	for _, f := range fields {
		t, _ := sch.GetType(f)
		fmt.Fprintf(&b, "  %s: %s;\n", f, s.MapType(t))
	}

	b.WriteString("}\n\n")
	b.WriteString("export class Validator {\n")
	fmt.Fprintf(&b, "  static %s(params: ValidationParams): boolean", funcName)

	return b.String()
}

func (typeScriptStrategy) LicenseHeader(traceabilityID string) string {
	return fmt.Sprintf("// Generated from traceability id %s. Use with ts-auto-guard for runtime validation.", traceabilityID)
}
