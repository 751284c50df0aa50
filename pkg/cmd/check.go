package cmd

import (
	"context"
	"fmt"
	"os"

	cmdutil "github.com/AbS224/Intent-coding/pkg/cmd/util"
	"github.com/AbS224/Intent-coding/pkg/smt"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "check satisfiability of one or more constraints against an external SMT solver.",
	Long: `Conjoins every --constraint clause into a single tree and asks the external
decision procedure (z3 by default) whether it is satisfiable. Prints sat with
its model, unsat with its core size, or unknown with a reason.`,
	Run: func(cmd *cobra.Command, args []string) {
		clauses := cmdutil.GetStringArray(cmd, "constraint")
		fields := cmdutil.GetStringArray(cmd, "field")
		binary := cmdutil.GetString(cmd, "solver")

		tree := buildTree(clauses)
		sch := buildSchema("cli-check", fields)

		solver := smt.NewSolver()
		if binary != "" {
			solver.Binary = binary
		}

		result, err := solver.Check(context.Background(), tree, sch)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		printResult(result)
	},
}

func printResult(result smt.Result) {
	switch {
	case result.IsSat():
		fmt.Println("sat")

		for name, v := range result.Model {
			fmt.Printf("  %s = %d\n", name, v)
		}

		if len(result.OutOfRange) > 0 {
			fmt.Printf("warning: model values out of declared range for: %v\n", result.OutOfRange)
		}
	case result.IsUnsat():
		fmt.Printf("unsat (core size %d)\n", result.CoreSize)
	default:
		fmt.Printf("unknown: %s\n", result.Reason)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringArray("constraint", nil, `a "left op right" clause, repeatable`)
	checkCmd.Flags().StringArray("field", nil, `a "name:type" schema declaration, repeatable`)
	checkCmd.Flags().String("solver", "", "external solver binary (default z3)")
	_ = checkCmd.MarkFlagRequired("constraint")
}
