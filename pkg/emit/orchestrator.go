package emit

import (
	"fmt"

	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
	log "github.com/sirupsen/logrus"
)

// EmissionResult is the {language, code, constraints_count} triple,
// plus any non-fatal warnings accumulated while composing it.
type EmissionResult struct {
	Language         Target
	Code             string
	ConstraintsCount int
	Warnings         []string
}

// Orchestrator composes a Strategy's twelve ingredients into final
// source text. It never inspects the text it produces — syntactic
// validity of the composed output is the registered Strategy's
// responsibility, not the Orchestrator's.
//
// Grounded on SchemaStack: a small struct wrapping a
// registry keyed by an enumeration, with a constructor that populates
// every built-in entry up front rather than lazily.
type Orchestrator struct {
	strategies map[Target]Strategy
}

// NewOrchestrator builds an Orchestrator with all seven built-in
// strategies registered.
func NewOrchestrator() *Orchestrator {
	o := &Orchestrator{strategies: make(map[Target]Strategy, 7)}

	for _, s := range []Strategy{
		newRustStrategy(),
		newTypeScriptStrategy(),
		newPythonStrategy(),
		newAdaStrategy(),
		newZigStrategy(),
		newElixirStrategy(),
		newSolidityStrategy(),
	} {
		o.Register(s)
	}

	return o
}

// Register adds or replaces the Strategy for its own Target(). This is
// how an eighth backend would be added without touching Emit.
func (o *Orchestrator) Register(s Strategy) {
	o.strategies[s.Target()] = s
}

// Emit renders tree and sch as a funcName-named function/module in
// target's language, following the five ordered steps:
// build the boolean expression, build the assertion block, ask the
// strategy for contracts, compose header/signature/contracts/body/
// trailer per target, and return {language, code, constraints_count}.
func (o *Orchestrator) Emit(tree ast.CompoundConstraint, sch *schema.Schema, target Target, funcName string) (EmissionResult, error) {
	strategy, ok := o.strategies[target]
	if !ok {
		return EmissionResult{}, &UnsupportedTargetError{Target: target}
	}

	deps := ast.Dependencies(tree)

	var warnings []string
	if missing := sch.MissingFields(deps); len(missing) > 0 {
		log.Warnf("emit: schema incomplete for %v, defaulting to int32: %v", target, missing)
		warnings = append(warnings, fmt.Sprintf("SchemaIncomplete: missing declared types for %v, defaulted to int32", missing))
	}

	fullExpr := BuildExpression(tree, strategy)
	assertions := BuildAssertions(tree, strategy)

	contracts, hasContracts := strategy.EmitContracts(tree, sch, fullExpr)

	body := composeBody(target, assertions, fullExpr, "    ")
	signature := strategy.BuildSignature(funcName, sch, sch.FieldNames())
	header := strategy.LicenseHeader(sch.TraceabilityID())
	postcondition := strategy.EmitPostcondition(fullExpr, sch)

	code := composeSource(target, funcName, header, signature, contracts, hasContracts, body, postcondition)
	code += buildTrailer(target, funcName)

	return EmissionResult{
		Language:         target,
		Code:             code,
		ConstraintsCount: ast.ConstraintCount(tree),
		Warnings:         warnings,
	}, nil
}

// composeBody renders every assertion in order followed by a return of
// the full boolean expression, using target's own return convention
// (trailing semicolon for the C-family and Ada, none for Python, and a
// bare expression with no "return" keyword for Elixir, whose function
// clauses return their last expression).
func composeBody(target Target, assertions []string, fullExpr string, indent string) string {
	body := ""

	for _, a := range assertions {
		body += indent + a + "\n"
	}

	switch target {
	case Elixir:
		body += indent + fullExpr + "\n"
	case Python:
		body += indent + "return " + fullExpr + "\n"
	default:
		body += indent + "return " + fullExpr + ";\n"
	}

	return body
}

// composeSource assembles the final per-target template. Target-specific
// templates differ in where contracts appear relative to the signature
// and in the block-closing syntax: Ada hoists contracts
// into a `with` aspect clause and closes with `end;`; Python has no
// closing delimiter at all; Elixir wraps the guarded clause plus its
// fall-through error clauses in a module, closed with `end`; every
// other target places contracts inside the body, before the assertion
// block, and closes with `}` (TypeScript needs a second `}` to close
// its enclosing class).
func composeSource(target Target, funcName, header, signature, contracts string, hasContracts bool, body, postcondition string) string {
	switch target {
	case Ada:
		code := header + "\n" + signature
		if hasContracts {
			code += contracts
		}

		code += "\nis\nbegin\n" + body + "end;\n"

		if postcondition != "" {
			code += postcondition + "\n"
		}

		return code
	case Python:
		code := header + "\n" + signature + ":\n"
		if hasContracts {
			code += contracts + "\n"
		}

		code += body

		return code
	case Elixir:
		code := header + "\n\ndefmodule Validator do\n"
		if hasContracts {
			code += contracts + "\n"
		}

		code += "  " + signature + " do\n" + body + "  end\n\n"
		code += fmt.Sprintf("  def %s?(params) when not is_map(params), do: {:error, :invalid_type}\n", funcName)
		code += fmt.Sprintf("  def %s?(_), do: {:error, :validation_failed}\n", funcName)
		code += "end\n"

		return code
	default:
		code := header + "\n" + signature + " {\n"
		if hasContracts {
			code += contracts + "\n"
		}

		code += body + "}\n"

		if target == TypeScript {
			code += "}\n"
		}

		if postcondition != "" {
			code += postcondition + "\n"
		}

		return code
	}
}

// buildTrailer appends the per-target artefact a complete emission
// needs beyond the function itself: Rust gets a Kani bounded-model-check
// proof harness, Zig gets a std.testing stub, Python gets a
// commented-out hypothesis property-test example, and Solidity gets a
// public view-function alias delegating to the pure validator. Every
// other target has no required trailer.
func buildTrailer(target Target, funcName string) string {
	switch target {
	case Rust:
		return fmt.Sprintf(`
#[cfg(kani)]
mod verification_%s {
    use super::*;

    #[kani::proof]
    fn verify_%s() {
        let params = kani::any::<ValidationParams>();
        let result = %s(&params);
        kani::cover!(result == true);
        kani::cover!(result == false);
    }
}
`, funcName, funcName, funcName)
	case Zig:
		return fmt.Sprintf(`
test "%s" {
    const params = ValidationParams{};
    const result = %s(params);
    try std.testing.expect(result == true or result == false);
}
`, funcName, funcName)
	case Python:
		return fmt.Sprintf(`

# Property-based test example (requires hypothesis)
# from hypothesis import given, strategies as st
# @given(st.dictionaries(st.text(), st.integers()))
# def test_%s(params):
#     result = %s(params)
#     assert isinstance(result, bool)
`, funcName, funcName)
	case Solidity:
		return fmt.Sprintf(`
function %sView(ValidationParams memory params) public view returns (bool) {
    return %s(params);
}
`, funcName, funcName)
	default:
		return ""
	}
}
