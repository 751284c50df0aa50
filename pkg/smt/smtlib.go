package smt

import (
	"fmt"
	"strings"

	"github.com/AbS224/Intent-coding/pkg/ast"
)

// GenerateSMTLib is the diagnostic pretty-printer: it
// emits `set-logic QF_LIA`, one `declare-const` per distinct variable
// (tracked across both sides of every constraint), one `assert` per
// constraint, then `check-sat` and `get-model`. The output parses with
// an unmodified, standards-compliant SMT-LIB v2 front-end.
//
// Follows a prelude/body/trailer shape over its own Lisp formula AST,
// the same structure a Program.WriteTo rendering uses.
func GenerateSMTLib(constraints []ast.Constraint) string {
	syms := newSymbolTable()

	formulas := make([]Formula, len(constraints))
	for i, c := range constraints {
		formulas[i] = translateLeaf(c, syms)
	}

	return render(syms, formulas)
}

// generateSMTLibForTree is the internal counterpart used by the solver:
// it renders a single formula derived from a whole CompoundConstraint
// tree (rather than a flat constraint list) as one `assert`.
func generateSMTLibForTree(tree ast.CompoundConstraint) (text string, syms *symbolTable) {
	syms = newSymbolTable()
	formula := translateTree(tree, syms)

	return render(syms, []Formula{formula}), syms
}

func render(syms *symbolTable, formulas []Formula) string {
	var b strings.Builder

	b.WriteString("(set-logic QF_LIA)\n")

	for _, name := range syms.order {
		fmt.Fprintf(&b, "(declare-const %s Int)\n", name)
	}

	for _, f := range formulas {
		b.WriteString("(assert ")
		b.WriteString(f.lisp())
		b.WriteString(")\n")
	}

	b.WriteString("(check-sat)\n")
	b.WriteString("(get-model)\n")

	return b.String()
}

// sanitizeSymbol rewrites characters SMT-LIB v2 simple symbols forbid
// into an underscore-joined identifier, so GenerateSMTLib's
// output always parses as a sequence of simple (unquoted) symbols.
func sanitizeSymbol(name string) string {
	r := strings.NewReplacer("(", "", ")", "", " ", "_", "+", "_plus_", "-", "_minus_", "*", "_times_", "/", "_over_")
	return r.Replace(name)
}
