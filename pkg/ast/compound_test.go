package ast

import "testing"

func Test_ConstraintCount_Simple(t *testing.T) {
	tree := Simple(NewConstraint("x", Gt, "0"))

	if n := ConstraintCount(tree); n != 1 {
		t.Errorf("expected 1 leaf, got %d", n)
	}
}

func Test_ConstraintCount_Nested(t *testing.T) {
	tree := And(
		Simple(NewConstraint("balance", Ge, "amount")),
		Or(
			Simple(NewConstraint("amount", Gt, "0")),
			Not(Simple(NewConstraint("amount", Eq, "0"))),
		),
	)

	if n := ConstraintCount(tree); n != 3 {
		t.Errorf("expected 3 leaves, got %d", n)
	}
}

func Test_ForEachLeaf_LeftToRight(t *testing.T) {
	tree := And(
		Simple(NewConstraint("a", Gt, "0")),
		Simple(NewConstraint("b", Gt, "0")),
		Simple(NewConstraint("c", Gt, "0")),
	)

	var order []string
	ForEachLeaf(tree, func(c Constraint) { order = append(order, c.LeftVariable) })

	expected := []string{"a", "b", "c"}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d] = %s, got %s", i, v, order[i])
		}
	}
}

func Test_TreeEquals(t *testing.T) {
	a := And(
		Simple(NewConstraint("x", Ge, "0")),
		Simple(NewConstraint("y", Lt, "10")),
	)
	b := And(
		Simple(NewConstraint("x", Ge, "0")),
		Simple(NewConstraint("y", Lt, "10")),
	)
	c := And(
		Simple(NewConstraint("x", Ge, "0")),
		Simple(NewConstraint("y", Lt, "11")),
	)

	if !TreeEquals(a, b) {
		t.Errorf("expected a and b to be structurally equal")
	}

	if TreeEquals(a, c) {
		t.Errorf("expected a and c to differ")
	}
}

func Test_And_PanicsOnFewerThanTwoChildren(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected And with one child to panic")
		}
	}()

	And(Simple(NewConstraint("x", Gt, "0")))
}

func Test_Eval_WithdrawPattern(t *testing.T) {
	// S1: And[balance >= amount; amount > 0]
	tree := And(
		Simple(NewConstraint("balance", Ge, "amount")),
		Simple(NewConstraint("amount", Gt, "0")),
	)

	env := map[string]int64{"balance": 100, "amount": 50}
	if !Eval(tree, env) {
		t.Errorf("expected withdraw pattern to hold for balance=100, amount=50")
	}

	env2 := map[string]int64{"balance": 10, "amount": 50}
	if Eval(tree, env2) {
		t.Errorf("expected withdraw pattern to fail for balance=10, amount=50")
	}
}

func Test_Dependencies(t *testing.T) {
	tree := Or(
		Simple(NewConstraint("role", Eq, "admin_id")),
		Simple(NewConstraint("role", Eq, "moderator_id")),
	)

	deps := Dependencies(tree)
	if len(deps) != 3 {
		t.Fatalf("expected 3 distinct variables, got %d: %v", len(deps), deps)
	}
}

func Test_ConstraintDual(t *testing.T) {
	c := NewConstraint("x", Lt, "0")
	d := c.Dual()

	if d.Operator != Ge {
		t.Errorf("expected dual of < to be >=, got %s", d.Operator)
	}

	env := map[string]int64{"x": 5}
	if c.Eval(env) == d.Eval(env) {
		t.Errorf("expected constraint and its dual to disagree on the same environment")
	}
}
