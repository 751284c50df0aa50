package emit

import (
	"strings"
	"testing"

	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
)

func withdrawSchema() *schema.Schema {
	sch := schema.NewSchema("trace-001")
	_ = sch.AddField("balance", schema.Int64Type(), "account balance")
	_ = sch.AddField("amount", schema.Int64Type(), "withdrawal amount")
	sch.Freeze()

	return sch
}

// S1: balance >= amount and amount > 0, rendered to Rust.
func Test_Emit_Rust_WithdrawPattern(t *testing.T) {
	tree := ast.And(
		ast.Simple(ast.NewConstraint("balance", ast.Ge, "amount")),
		ast.Simple(ast.NewConstraint("amount", ast.Gt, "0")),
	)

	o := NewOrchestrator()

	result, err := o.Emit(tree, withdrawSchema(), Rust, "validate_withdraw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ConstraintsCount != 2 {
		t.Errorf("expected 2 constraints, got %d", result.ConstraintsCount)
	}

	for _, want := range []string{
		"params.balance >= params.amount",
		"params.amount > 0",
		"&&",
		"debug_assert!",
		"pub fn validate_withdraw(params: &ValidationParams) -> bool",
		"return ",
	} {
		if !strings.Contains(result.Code, want) {
			t.Errorf("expected generated Rust to contain %q, got:\n%s", want, result.Code)
		}
	}
}

// S3: balance >= amount or is_admin == 1, rendered to Python.
func Test_Emit_Python_DisjunctiveAccess(t *testing.T) {
	tree := ast.Or(
		ast.Simple(ast.NewConstraint("balance", ast.Ge, "amount")),
		ast.Simple(ast.NewConstraint("is_admin", ast.Eq, "1")),
	)

	sch := schema.NewSchema("trace-002")
	_ = sch.AddField("balance", schema.Int64Type(), "")
	_ = sch.AddField("amount", schema.Int64Type(), "")
	_ = sch.AddField("is_admin", schema.BoolType(), "")
	sch.Freeze()

	o := NewOrchestrator()

	result, err := o.Emit(tree, sch, Python, "validate_access")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"params['balance'] >= params['amount']",
		"params['is_admin'] == 1",
		" or ",
		"def validate_access(params: dict) -> bool:",
		"return (",
	} {
		if !strings.Contains(result.Code, want) {
			t.Errorf("expected generated Python to contain %q, got:\n%s", want, result.Code)
		}
	}

	if strings.Contains(result.Code, "{") {
		t.Errorf("python output should never contain a brace:\n%s", result.Code)
	}
}

// S4: not (is_blocked == 1), rendered to Rust.
func Test_Emit_Rust_Negation(t *testing.T) {
	tree := ast.Not(ast.Simple(ast.NewConstraint("is_blocked", ast.Eq, "1")))

	sch := schema.NewSchema("trace-003")
	_ = sch.AddField("is_blocked", schema.BoolType(), "")
	sch.Freeze()

	o := NewOrchestrator()

	result, err := o.Emit(tree, sch, Rust, "validate_unblocked")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Code, "!(params.is_blocked == 1)") {
		t.Errorf("expected negated expression, got:\n%s", result.Code)
	}

	// Not does not invert leaves for the assertion block: the per-leaf assertion still reads the un-negated form.
	if !strings.Contains(result.Code, "debug_assert!(params.is_blocked == 1);") {
		t.Errorf("expected un-negated per-leaf assertion, got:\n%s", result.Code)
	}
}

// S5: Ada target renders PascalCase field access and a precondition/
// postcondition aspect clause.
func Test_Emit_Ada_Casing(t *testing.T) {
	tree := ast.And(
		ast.Simple(ast.NewConstraint("user_balance", ast.Ge, "amount")),
		ast.Simple(ast.NewConstraint("amount", ast.Gt, "0")),
	)

	sch := schema.NewSchema("trace-004")
	_ = sch.AddField("user_balance", schema.Int64Type(), "")
	_ = sch.AddField("amount", schema.Int64Type(), "")
	sch.Freeze()

	o := NewOrchestrator()

	result, err := o.Emit(tree, sch, Ada, "Validate_Transfer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Params.User_Balance >= Params.Amount",
		"and then",
		"SPARK_Mode => On",
		"Pre  =>",
		"Post =>",
		"pragma Assert",
		"end;",
	} {
		if !strings.Contains(result.Code, want) {
			t.Errorf("expected generated Ada to contain %q, got:\n%s", want, result.Code)
		}
	}
}

// A precondition nested two And levels deep must still surface in the
// Ada Pre clause, not just the root And's direct children.
func Test_Emit_Ada_NestedAndPreconditionsAllSurface(t *testing.T) {
	tree := ast.And(
		ast.And(
			ast.Simple(ast.NewConstraint("user_balance", ast.Ge, "amount")),
			ast.Simple(ast.NewConstraint("amount", ast.Gt, "0")),
		),
		ast.Simple(ast.NewConstraint("user_balance", ast.Le, "1000000")),
	)

	sch := schema.NewSchema("trace-005")
	_ = sch.AddField("user_balance", schema.Int64Type(), "")
	_ = sch.AddField("amount", schema.Int64Type(), "")
	sch.Freeze()

	o := NewOrchestrator()

	result, err := o.Emit(tree, sch, Ada, "Validate_Transfer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Pre  => Params.User_Balance >= Params.Amount",
		"Pre  => Params.Amount > 0",
		"Pre  => Params.User_Balance <= 1000000",
	} {
		if !strings.Contains(result.Code, want) {
			t.Errorf("expected generated Ada to contain precondition %q, got:\n%s", want, result.Code)
		}
	}
}

func Test_Emit_UnsupportedTarget(t *testing.T) {
	o := &Orchestrator{strategies: map[Target]Strategy{}}

	_, err := o.Emit(ast.Simple(ast.NewConstraint("x", ast.Gt, "0")), schema.NewSchema("t"), Rust, "f")

	if _, ok := err.(*UnsupportedTargetError); !ok {
		t.Fatalf("expected *UnsupportedTargetError, got %T (%v)", err, err)
	}
}

func Test_Emit_SchemaIncompleteWarning(t *testing.T) {
	tree := ast.Simple(ast.NewConstraint("undeclared", ast.Gt, "0"))
	sch := schema.NewSchema("trace-005")
	sch.Freeze()

	o := NewOrchestrator()

	result, err := o.Emit(tree, sch, Rust, "validate_loose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("expected one SchemaIncomplete warning, got %v", result.Warnings)
	}
}

// Rust emission ends with a Kani bounded-model-check proof harness.
func Test_Emit_Rust_KaniTrailer(t *testing.T) {
	tree := ast.Simple(ast.NewConstraint("amount", ast.Gt, "0"))

	o := NewOrchestrator()

	result, err := o.Emit(tree, withdrawSchema(), Rust, "validate_withdraw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"#[cfg(kani)]",
		"#[kani::proof]",
		"fn verify_validate_withdraw()",
		"kani::any::<ValidationParams>()",
		"kani::cover!(result == true);",
	} {
		if !strings.Contains(result.Code, want) {
			t.Errorf("expected Rust output to contain %q, got:\n%s", want, result.Code)
		}
	}
}

// Zig emission ends with a std.testing stub.
func Test_Emit_Zig_TestStub(t *testing.T) {
	tree := ast.Simple(ast.NewConstraint("amount", ast.Gt, "0"))

	o := NewOrchestrator()

	result, err := o.Emit(tree, withdrawSchema(), Zig, "validate_amount")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`test "validate_amount"`,
		"std.testing.expect(result == true or result == false)",
		"comptime {",
	} {
		if !strings.Contains(result.Code, want) {
			t.Errorf("expected Zig output to contain %q, got:\n%s", want, result.Code)
		}
	}
}

// A leaf comparing two fields reads a runtime value on both sides and
// cannot be folded into a Zig comptime block.
func Test_Emit_Zig_VariableComparisonSkipsComptimeBlock(t *testing.T) {
	tree := ast.Simple(ast.NewConstraint("balance", ast.Ge, "amount"))

	o := NewOrchestrator()

	result, err := o.Emit(tree, withdrawSchema(), Zig, "validate_withdraw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(result.Code, "comptime {") {
		t.Errorf("expected no comptime block for a variable-to-variable comparison, got:\n%s", result.Code)
	}

	if !strings.Contains(result.Code, "std.debug.assert(params.balance >= params.amount);") {
		t.Errorf("expected a plain runtime assertion, got:\n%s", result.Code)
	}
}

// Python emission ends with a commented-out hypothesis property-test
// stub.
func Test_Emit_Python_HypothesisStub(t *testing.T) {
	tree := ast.Simple(ast.NewConstraint("amount", ast.Gt, "0"))

	o := NewOrchestrator()

	result, err := o.Emit(tree, withdrawSchema(), Python, "validate_amount")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"# from hypothesis import given, strategies as st",
		"# def test_validate_amount(params):",
	} {
		if !strings.Contains(result.Code, want) {
			t.Errorf("expected Python output to contain %q, got:\n%s", want, result.Code)
		}
	}
}

// TypeScript emission wraps the static method in an exported class,
// and the class brace is actually closed.
func Test_Emit_TypeScript_ClassWrapper(t *testing.T) {
	tree := ast.Simple(ast.NewConstraint("amount", ast.Gt, "0"))

	o := NewOrchestrator()

	result, err := o.Emit(tree, withdrawSchema(), TypeScript, "validateAmount")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Code, "export class Validator {") {
		t.Errorf("expected TypeScript output to open a Validator class, got:\n%s", result.Code)
	}

	if !strings.Contains(result.Code, "static validateAmount(params: ValidationParams): boolean {") {
		t.Errorf("expected TypeScript output to contain the static method, got:\n%s", result.Code)
	}

	// the method body's closing brace and the enclosing class's closing
	// brace must both appear, as two distinct trailing lines.
	if strings.Count(result.Code, "}\n") < 2 {
		t.Errorf("expected TypeScript output to close both the method and the class, got:\n%s", result.Code)
	}
}

// Elixir emission wraps the guarded clause in a module and appends the
// fall-through error clauses for type and validation mismatches.
func Test_Emit_Elixir_ModuleAndFallthrough(t *testing.T) {
	tree := ast.Simple(ast.NewConstraint("amount", ast.Gt, "0"))

	o := NewOrchestrator()

	result, err := o.Emit(tree, withdrawSchema(), Elixir, "validate_amount")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"defmodule Validator do",
		"def validate_amount?(params) when is_map(params) do",
		"def validate_amount?(params) when not is_map(params), do: {:error, :invalid_type}",
		"def validate_amount?(_), do: {:error, :validation_failed}",
		"\nend\n",
	} {
		if !strings.Contains(result.Code, want) {
			t.Errorf("expected Elixir output to contain %q, got:\n%s", want, result.Code)
		}
	}
}

// Solidity emission carries the SPDX tag, a require() assertion, and a
// view-function alias of the pure validator.
func Test_Emit_Solidity_ViewAlias(t *testing.T) {
	tree := ast.Simple(ast.NewConstraint("amount", ast.Gt, "0"))

	o := NewOrchestrator()

	result, err := o.Emit(tree, withdrawSchema(), Solidity, "validateAmount")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"// SPDX-License-Identifier: MIT",
		"require(",
		"function validateAmount(ValidationParams memory params) public pure returns (bool)",
		"function validateAmountView(ValidationParams memory params) public view returns (bool) {",
		"return validateAmount(params);",
	} {
		if !strings.Contains(result.Code, want) {
			t.Errorf("expected Solidity output to contain %q, got:\n%s", want, result.Code)
		}
	}
}

// Emission is deterministic: the same tree and schema render to
// byte-identical output across repeated calls (testable property 5).
func Test_Emit_Deterministic(t *testing.T) {
	tree := ast.And(
		ast.Simple(ast.NewConstraint("balance", ast.Ge, "amount")),
		ast.Simple(ast.NewConstraint("amount", ast.Gt, "0")),
	)

	o := NewOrchestrator()

	first, err := o.Emit(tree, withdrawSchema(), TypeScript, "validate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := o.Emit(tree, withdrawSchema(), TypeScript, "validate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Code != second.Code {
		t.Errorf("expected deterministic emission, got two different renderings")
	}
}

// A schema field never mentioned by the constraint tree still appears
// in the emitted ValidationParams shape, in its declared position.
func Test_Emit_UnreferencedSchemaFieldSurvivesInSignature(t *testing.T) {
	sch := schema.NewSchema("trace-002")
	_ = sch.AddField("balance", schema.Int64Type(), "")
	_ = sch.AddField("notes", schema.StringType(), "")
	_ = sch.AddField("amount", schema.Int64Type(), "")
	sch.Freeze()

	tree := ast.Simple(ast.NewConstraint("balance", ast.Ge, "amount"))

	o := NewOrchestrator()

	result, err := o.Emit(tree, sch, TypeScript, "validate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Code, "notes: string;") {
		t.Errorf("expected unreferenced field %q to appear in the emitted signature, got:\n%s", "notes", result.Code)
	}

	balanceIdx := strings.Index(result.Code, "balance:")
	notesIdx := strings.Index(result.Code, "notes:")
	amountIdx := strings.Index(result.Code, "amount:")

	if !(balanceIdx < notesIdx && notesIdx < amountIdx) {
		t.Errorf("expected fields in declaration order balance, notes, amount; got code:\n%s", result.Code)
	}
}
