package emit

import (
	"fmt"
	"strings"

	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
)

// solidityStrategy targets Solidity: ==/!=, &&/||, params.x access,
// require() for the runtime layer, and the SPDX header line.
type solidityStrategy struct{}

func newSolidityStrategy() Strategy { return solidityStrategy{} }

func (solidityStrategy) Target() Target { return Solidity }

func (solidityStrategy) MapType(t schema.DataType) string {
	switch t.Tag() {
	case schema.TagUint64:
		return "uint64"
	case schema.TagUint32:
		return "uint32"
	case schema.TagInt64:
		return "int64"
	case schema.TagInt32:
		return "int32"
	case schema.TagString:
		return "string"
	case schema.TagBool:
		return "bool"
	case schema.TagDecimal:
		return "int256"
	default:
		return t.Name()
	}
}

func (solidityStrategy) FormatOperator(op ast.ConstraintOperator) string {
	return cLikeRelational(op, "==", "!=")
}

func (solidityStrategy) FormatVariable(name string) string {
	return "params." + name
}

func (solidityStrategy) LogicalAnd(parts []string) string { return joinParenthesised(parts, " && ") }
func (solidityStrategy) LogicalOr(parts []string) string  { return joinParenthesised(parts, " || ") }

func (solidityStrategy) LogicalNot(expr string) string {
	return "!(" + expr + ")"
}

func (solidityStrategy) WrapAssertion(expr string) string {
	return fmt.Sprintf("require(%s);", expr)
}

func (solidityStrategy) EmitContracts(ast.CompoundConstraint, *schema.Schema, string) (string, bool) {
	return "", false
}

// SafeOp emits the bare arithmetic operator: every Solidity compiler
// targeted by this generator (>=0.8.0) reverts on overflow by default,
// so no checked-math call is emitted the way it is for Rust,
// TypeScript, Python, Zig and Elixir.
func (solidityStrategy) SafeOp(l string, op ast.ArithmeticOperator, r string, t schema.DataType) string {
	_ = t
	return fmt.Sprintf("(%s %s %s)", l, op, r)
}

func (solidityStrategy) EmitPostcondition(string, *schema.Schema) string {
	return ""
}

func (s solidityStrategy) BuildSignature(funcName string, sch *schema.Schema, fields []string) string {
	var b strings.Builder

	b.WriteString("struct ValidationParams {\n")

	for _, f := range fields {
		t, _ := sch.GetType(f)
		fmt.Fprintf(&b, "    %s %s;\n", s.MapType(t), f)
	}

	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "function %s(ValidationParams memory params) public pure returns (bool)", funcName)

	return b.String()
}

func (solidityStrategy) LicenseHeader(traceabilityID string) string {
	return fmt.Sprintf("// SPDX-License-Identifier: MIT\n// Generated from traceability id %s. Use with Slither for security analysis, Echidna for property testing.", traceabilityID)
}
