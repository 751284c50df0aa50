package smt

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
	"github.com/AbS224/Intent-coding/pkg/util/sexp"
	log "github.com/sirupsen/logrus"
)

// SolverInternalError wraps an unexpected failure of the external
// decision procedure (a non-solver-semantic failure: the binary
// couldn't be found, it crashed, or its output didn't parse).
type SolverInternalError struct {
	Message string
	Cause   error
}

func (e *SolverInternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("smt: solver internal error: %s: %v", e.Message, e.Cause)
	}

	return fmt.Sprintf("smt: solver internal error: %s", e.Message)
}

func (e *SolverInternalError) Unwrap() error { return e.Cause }

// Solver decides satisfiability of compound constraints by shelling out
// to an external SMT-LIB v2 decision procedure. Each call allocates a
// fresh solver context so repeated calls cannot leak asserted facts
// between analyses — a subprocess per call achieves this trivially,
// since nothing survives the process's exit.
//
// Uses the os/exec.Command + buffered-stdout pattern for invoking an
// external tool.
type Solver struct {
	// Binary is the external decision procedure's executable name or
	// path. Defaults to "z3" when empty.
	Binary string
}

// NewSolver constructs a Solver using the "z3" binary on PATH.
func NewSolver() *Solver {
	return &Solver{Binary: "z3"}
}

func (s *Solver) binary() string {
	if s.Binary == "" {
		return "z3"
	}

	return s.Binary
}

// Check decides whether tree is satisfiable, optionally cross-checking
// any produced model against sch's declared ranges. A nil schema skips
// the range check (ModelOutOfRange warnings require a schema).
//
// ctx governs cancellation: a cancelled ctx aborts the external process
// and Check returns Result{Status: StatusUnknown, Reason: "cancelled"},
// discarding any partial output.
func (s *Solver) Check(ctx context.Context, tree ast.CompoundConstraint, sch *schema.Schema) (Result, error) {
	text, syms := generateSMTLibForTree(tree)

	out, err := s.run(ctx, text)
	if err != nil {
		if ctx.Err() != nil {
			return Result{Status: StatusUnknown, Reason: "cancelled"}, nil
		}

		return Result{}, &SolverInternalError{Message: "failed to invoke external decision procedure", Cause: err}
	}

	return parseSolverOutput(out, syms.order, sch)
}

// CheckEquivalence decides whether a and b are logically equivalent by
// running the two-call protocol: both "a ∧ ¬b" and
// "b ∧ ¬a" must be UNSAT. Either being SAT implies non-equivalence.
func (s *Solver) CheckEquivalence(ctx context.Context, a, b ast.CompoundConstraint) (bool, error) {
	forward := ast.And(a, ast.Not(b))

	forwardResult, err := s.Check(ctx, forward, nil)
	if err != nil {
		return false, err
	}

	if forwardResult.Status == StatusUnknown {
		return false, &SolverInternalError{Message: fmt.Sprintf("equivalence check inconclusive: %s", forwardResult.Reason)}
	}

	if forwardResult.IsSat() {
		return false, nil
	}

	backward := ast.And(b, ast.Not(a))

	backwardResult, err := s.Check(ctx, backward, nil)
	if err != nil {
		return false, err
	}

	if backwardResult.Status == StatusUnknown {
		return false, &SolverInternalError{Message: fmt.Sprintf("equivalence check inconclusive: %s", backwardResult.Reason)}
	}

	return backwardResult.IsUnsat(), nil
}

func (s *Solver) run(ctx context.Context, smtLibText string) (string, error) {
	cmd := exec.CommandContext(ctx, s.binary(), "-in")
	cmd.Stdin = strings.NewReader(smtLibText)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	log.Debugf("smt: invoking %s -in", s.binary())

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return stdout.String(), nil
}

// parseSolverOutput reads the external procedure's stdout: the first
// token is sat/unsat/unknown, optionally followed by a (model ...)
// s-expression (sat) or nothing further this version inspects for
// unsat (the unsat core's symbolic content is kept opaque — only its
// size is reported, derived here from the number of declared symbols
// as a stand-in since this module does not request `(get-unsat-core)`
// named assertions).
func parseSolverOutput(out string, declared []string, sch *schema.Schema) (Result, error) {
	trimmed := strings.TrimSpace(out)

	switch {
	case strings.HasPrefix(trimmed, "unsat"):
		return Result{Status: StatusUnsat, CoreSize: len(declared)}, nil
	case strings.HasPrefix(trimmed, "unknown"):
		return Result{Status: StatusUnknown, Reason: "solver returned unknown"}, nil
	case strings.HasPrefix(trimmed, "sat"):
		model, err := parseModel(trimmed[len("sat"):], declared)
		if err != nil {
			return Result{}, &SolverInternalError{Message: "failed to parse model", Cause: err}
		}

		result := Result{Status: StatusSat, Model: model}

		if sch != nil {
			for name, v := range model {
				t, known := sch.GetType(name)
				if known && t.RequiresOverflowProtection() && !t.AcceptInt(v) {
					result.OutOfRange = append(result.OutOfRange, name)
				}
			}
		}

		return result, nil
	default:
		return Result{}, &SolverInternalError{Message: fmt.Sprintf("unrecognised solver output: %q", trimmed)}
	}
}

// parseModel extracts a var -> int64 map from a z3-style
// "(model (define-fun NAME () Int VALUE) ...)" s-expression, defaulting
// any declared variable the model omits to zero.
func parseModel(text string, declared []string) (map[string]int64, error) {
	model := make(map[string]int64, len(declared))
	for _, name := range declared {
		model[name] = 0
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return model, nil
	}

	top, _, err := sexp.Parse(text)
	if err != nil {
		return nil, err
	}

	list := top.AsList()
	if list == nil {
		return nil, fmt.Errorf("expected a (model ...) list, got a symbol")
	}

	for i := 0; i < list.Len(); i++ {
		entry := list.Get(i).AsList()
		if entry == nil || entry.Len() < 4 {
			continue
		}

		head := entry.Get(0).AsSymbol()
		if head == nil || head.Value != "define-fun" {
			continue
		}

		nameSym := entry.Get(1).AsSymbol()
		if nameSym == nil {
			continue
		}

		valueNode := entry.Get(entry.Len() - 1)

		v, err := literalValue(valueNode)
		if err != nil {
			return nil, err
		}

		model[nameSym.Value] = v
	}

	return model, nil
}

// literalValue interprets a model value node as an int64, handling the
// "(- N)" negative-literal encoding SMT-LIB v2 uses.
func literalValue(node sexp.SExp) (int64, error) {
	if sym := node.AsSymbol(); sym != nil {
		return strconv.ParseInt(sym.Value, 10, 64)
	}

	list := node.AsList()
	if list != nil && list.Len() == 2 {
		if head := list.Get(0).AsSymbol(); head != nil && head.Value == "-" {
			inner, err := literalValue(list.Get(1))
			if err != nil {
				return 0, err
			}

			return -inner, nil
		}
	}

	return 0, fmt.Errorf("smt: could not interpret model value %v", node)
}
