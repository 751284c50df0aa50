package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AbS224/Intent-coding/pkg/ast"
	"github.com/AbS224/Intent-coding/pkg/schema"
)

// buildTree parses one or more "left op right" clauses and conjoins
// them into a single CompoundConstraint tree, matching FromCST's
// "more than one top-level condition is implicitly conjoined" rule.
// This is the CLI's own tiny clause grammar, separate from the
// natural-language front-end the ingress facade treats as an external
// collaborator.
func buildTree(clauses []string) ast.CompoundConstraint {
	if len(clauses) == 0 {
		fmt.Println("error: at least one --constraint \"left op right\" is required")
		os.Exit(1)
	}

	leaves := make([]ast.CompoundConstraint, len(clauses))
	for i, c := range clauses {
		leaves[i] = ast.Simple(parseClause(c))
	}

	if len(leaves) == 1 {
		return leaves[0]
	}

	return ast.And(leaves...)
}

// parseClause splits a clause on whitespace into exactly three tokens:
// left operand, operator, right operand.
func parseClause(clause string) ast.Constraint {
	fields := strings.Fields(clause)
	if len(fields) != 3 {
		fmt.Printf("error: malformed constraint %q, expected \"left op right\"\n", clause)
		os.Exit(1)
	}

	op, err := operatorFromSymbol(fields[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return ast.NewConstraint(fields[0], op, fields[2])
}

func operatorFromSymbol(sym string) (ast.ConstraintOperator, error) {
	switch sym {
	case ">=":
		return ast.Ge, nil
	case "<=":
		return ast.Le, nil
	case ">":
		return ast.Gt, nil
	case "<":
		return ast.Lt, nil
	case "=", "==":
		return ast.Eq, nil
	case "!=", "<>":
		return ast.Ne, nil
	default:
		return 0, fmt.Errorf("error: unknown operator token %q", sym)
	}
}

// buildSchema parses one or more "name:type" declarations into a
// frozen Schema carrying traceabilityID. Supported type tokens mirror
// schema.DataType's String() rendering.
func buildSchema(traceabilityID string, fields []string) *schema.Schema {
	sch := schema.NewSchema(traceabilityID)

	for _, f := range fields {
		name, typeTok, ok := strings.Cut(f, ":")
		if !ok {
			fmt.Printf("error: malformed field %q, expected \"name:type\"\n", f)
			os.Exit(1)
		}

		t, err := dataTypeFromToken(typeTok)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		_ = sch.AddField(name, t, "")
	}

	sch.Freeze()

	return sch
}

func dataTypeFromToken(tok string) (schema.DataType, error) {
	switch tok {
	case "uint64":
		return schema.Uint64Type(), nil
	case "uint32":
		return schema.Uint32Type(), nil
	case "int64":
		return schema.Int64Type(), nil
	case "int32":
		return schema.Int32Type(), nil
	case "string":
		return schema.StringType(), nil
	case "bool":
		return schema.BoolType(), nil
	case "decimal":
		return schema.DecimalType(), nil
	default:
		return schema.DataType{}, fmt.Errorf("error: unknown type token %q", tok)
	}
}
