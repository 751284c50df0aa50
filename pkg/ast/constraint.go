package ast

import "strconv"

// Constraint is a leaf comparison: left_variable operator right_value.
// It has no free structure of its own — it is always the bottom of a
// CompoundConstraint tree.
type Constraint struct {
	LeftVariable string
	Operator     ConstraintOperator
	// RightValue is a string the core parses lazily: a decimal integer
	// literal if it parses as a signed 64-bit integer, otherwise a
	// variable reference.
	RightValue string
}

// NewConstraint builds a leaf constraint.
func NewConstraint(left string, op ConstraintOperator, right string) Constraint {
	return Constraint{LeftVariable: left, Operator: op, RightValue: right}
}

// RightLiteral returns the decimal value of RightValue and true when it
// parses as a signed 64-bit integer literal.
func (c Constraint) RightLiteral() (int64, bool) {
	v, err := strconv.ParseInt(c.RightValue, 10, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// RightIsVariable reports whether RightValue should be interpreted as a
// variable reference rather than a literal.
func (c Constraint) RightIsVariable() bool {
	_, ok := c.RightLiteral()
	return !ok
}

// Dual returns the constraint whose truth value is the negation of this
// one's, by swapping the operator for its dual and leaving the operands
// untouched (testable property 3).
func (c Constraint) Dual() Constraint {
	return Constraint{LeftVariable: c.LeftVariable, Operator: c.Operator.Dual(), RightValue: c.RightValue}
}

// Equals is field-wise equality of the three leaf fields.
func (c Constraint) Equals(o Constraint) bool {
	return c.LeftVariable == o.LeftVariable && c.Operator == o.Operator && c.RightValue == o.RightValue
}

// Eval evaluates this constraint given an environment mapping variable
// names to their integer values. The left variable and, if RightValue
// is a variable reference, the right variable must both be present in
// env; a missing binding is a programmer error (the caller is expected
// to have checked Dependencies first) and panics rather than silently
// defaulting.
func (c Constraint) Eval(env map[string]int64) bool {
	l, ok := env[c.LeftVariable]
	if !ok {
		panic("ast: unbound variable in constraint evaluation: " + c.LeftVariable)
	}

	if lit, isLit := c.RightLiteral(); isLit {
		return c.Operator.Eval(l, lit)
	}

	r, ok := env[c.RightValue]
	if !ok {
		panic("ast: unbound variable in constraint evaluation: " + c.RightValue)
	}

	return c.Operator.Eval(l, r)
}

// Dependencies returns the set of variable names this constraint reads,
// in left-to-right order (left variable first, then the right variable
// if RightValue is not a literal).
func (c Constraint) Dependencies() []string {
	if c.RightIsVariable() {
		return []string{c.LeftVariable, c.RightValue}
	}

	return []string{c.LeftVariable}
}
