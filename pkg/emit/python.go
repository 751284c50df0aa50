package emit

import (
	"fmt"
	"strings"

	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
)

// pythonStrategy targets Python, favouring the native assert statement
// and dict-keyed parameter access: ==/!=, and/or/not, params['x']
// access, the @dataclass ValidationParams placeholder, and the
// commented-out hypothesis property-test stub.
type pythonStrategy struct{}

func newPythonStrategy() Strategy { return pythonStrategy{} }

func (pythonStrategy) Target() Target { return Python }

func (pythonStrategy) MapType(t schema.DataType) string {
	switch t.Tag() {
	case schema.TagUint64, schema.TagUint32, schema.TagInt64, schema.TagInt32:
		return "int"
	case schema.TagString:
		return "str"
	case schema.TagBool:
		return "bool"
	case schema.TagDecimal:
		return "decimal.Decimal"
	default:
		return t.Name()
	}
}

func (pythonStrategy) FormatOperator(op ast.ConstraintOperator) string {
	return cLikeRelational(op, "==", "!=")
}

func (pythonStrategy) FormatVariable(name string) string {
	return fmt.Sprintf("params['%s']", name)
}

func (pythonStrategy) LogicalAnd(parts []string) string { return joinParenthesised(parts, " and ") }
func (pythonStrategy) LogicalOr(parts []string) string  { return joinParenthesised(parts, " or ") }

func (pythonStrategy) LogicalNot(expr string) string {
	return "not (" + expr + ")"
}

func (pythonStrategy) WrapAssertion(expr string) string {
	return "assert " + expr
}

func (pythonStrategy) EmitContracts(ast.CompoundConstraint, *schema.Schema, string) (string, bool) {
	return "", false
}

func (pythonStrategy) SafeOp(l string, op ast.ArithmeticOperator, r string, t schema.DataType) string {
	name := map[ast.ArithmeticOperator]string{ast.Add: "add", ast.Sub: "sub", ast.Mul: "mul"}[op]
	return fmt.Sprintf("checked_%s(%s, %s, %d)", name, l, r, t.BitWidth())
}

func (pythonStrategy) EmitPostcondition(string, *schema.Schema) string {
	return ""
}

func (s pythonStrategy) BuildSignature(funcName string, sch *schema.Schema, fields []string) string {
	var b strings.Builder

	b.WriteString("@dataclass\nclass ValidationParams:\n    \"\"\"Validation parameters structure.\"\"\"\n")

	for _, f := range fields {
		t, _ := sch.GetType(f)
		fmt.Fprintf(&b, "    %s: %s\n", f, s.MapType(t))
	}

	b.WriteString("\n\n")
	fmt.Fprintf(&b, "def %s(params: dict) -> bool", funcName)

	return b.String()
}

func (pythonStrategy) LicenseHeader(traceabilityID string) string {
	return fmt.Sprintf("# Generated from traceability id %s. Use with hypothesis for property-based testing.", traceabilityID)
}
