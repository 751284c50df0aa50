//go:build js && wasm

// Package wasmvalidator exposes the six relational-operator validators
// to a JavaScript host via syscall/js: one function per
// operator in {>=, <=, >, <, =, !=}, each (l, r int64) -> bool, plus
// get_version and operator_to_string.
//
// Uses the standard library's own Go-to-WASM export idiom directly
// (js.FuncOf + js.Global().Set) — there is no third-party wrapper
// around it more idiomatic than the standard library itself.
package wasmvalidator

import (
	"syscall/js"

	"github.com/AbS224/Intent-coding/pkg/ast"
)

// Version is the package version string get_version reports to the
// JS host.
const Version = "1.0.0"

// Register installs every exported function onto the JS global object.
// Call this once from main's init path when built with GOOS=js
// GOARCH=wasm.
func Register() {
	js.Global().Set("ge", operatorFunc(ast.Ge))
	js.Global().Set("le", operatorFunc(ast.Le))
	js.Global().Set("gt", operatorFunc(ast.Gt))
	js.Global().Set("lt", operatorFunc(ast.Lt))
	js.Global().Set("eq", operatorFunc(ast.Eq))
	js.Global().Set("ne", operatorFunc(ast.Ne))
	js.Global().Set("get_version", js.FuncOf(getVersion))
	js.Global().Set("operator_to_string", js.FuncOf(operatorToString))
}

// operatorFunc wraps a fixed ConstraintOperator as a js.Func taking two
// int64-convertible arguments and returning a bool.
func operatorFunc(op ast.ConstraintOperator) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		l := int64(args[0].Int())
		r := int64(args[1].Int())

		return op.Eval(l, r)
	})
}

func getVersion(this js.Value, args []js.Value) any {
	return Version
}

// operatorToString maps the integer index 0..5 to its operator symbol,
// and any other index to "unknown".
func operatorToString(this js.Value, args []js.Value) any {
	op, ok := ast.OperatorFromIndex(args[0].Int())
	if !ok {
		return "unknown"
	}

	return op.String()
}
