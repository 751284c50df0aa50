package cmd

import (
	"testing"

	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
)

func Test_ParseClause_ParsesEachOperatorToken(t *testing.T) {
	cases := map[string]ast.ConstraintOperator{
		"balance >= amount": ast.Ge,
		"balance <= amount": ast.Le,
		"balance > amount":  ast.Gt,
		"balance < amount":  ast.Lt,
		"balance = amount":  ast.Eq,
		"balance != amount": ast.Ne,
	}

	for clause, want := range cases {
		c := parseClause(clause)

		if c.LeftVariable != "balance" || c.RightValue != "amount" || c.Operator != want {
			t.Errorf("parseClause(%q) = %+v, want operator %v", clause, c, want)
		}
	}
}

func Test_BuildTree_SingleClauseIsSimple(t *testing.T) {
	tree := buildTree([]string{"amount > 0"})

	if tree.Kind() != ast.KindSimple {
		t.Fatalf("expected a single clause to build a Simple node, got kind %v", tree.Kind())
	}
}

func Test_BuildTree_MultipleClausesAreConjoined(t *testing.T) {
	tree := buildTree([]string{"balance >= amount", "amount > 0"})

	if tree.Kind() != ast.KindAnd {
		t.Fatalf("expected multiple clauses to conjoin, got kind %v", tree.Kind())
	}

	if ast.ConstraintCount(tree) != 2 {
		t.Errorf("expected 2 leaves, got %d", ast.ConstraintCount(tree))
	}
}

func Test_BuildSchema_ParsesEveryTypeToken(t *testing.T) {
	sch := buildSchema("trace-cli", []string{
		"a:uint64", "b:uint32", "c:int64", "d:int32",
		"e:string", "f:bool", "g:decimal",
	})

	if !sch.Frozen() {
		t.Fatal("expected buildSchema to return a frozen schema")
	}

	want := map[string]schema.Tag{
		"a": schema.TagUint64,
		"b": schema.TagUint32,
		"c": schema.TagInt64,
		"d": schema.TagInt32,
		"e": schema.TagString,
		"f": schema.TagBool,
		"g": schema.TagDecimal,
	}

	for name, tag := range want {
		got, ok := sch.GetType(name)
		if !ok {
			t.Errorf("expected field %q to be declared", name)
			continue
		}

		if got.Tag() != tag {
			t.Errorf("field %q: got tag %v, want %v", name, got.Tag(), tag)
		}
	}
}
