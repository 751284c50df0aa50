package cmd

import (
	"fmt"

	"github.com/AbS224/Intent-coding/pkg/ast"
	cmdutil "github.com/AbS224/Intent-coding/pkg/cmd/util"
	"github.com/AbS224/Intent-coding/pkg/smt"
	"github.com/spf13/cobra"
)

var smtLibCmd = &cobra.Command{
	Use:   "smt-lib [flags]",
	Short: "print the diagnostic SMT-LIB v2 rendering of one or more constraints.",
	Long: `Prints the QF_LIA SMT-LIB v2 text specifies: one
declare-const per distinct variable, one assert per --constraint clause, a
single check-sat, and a single get-model. This is a diagnostic surface only
— the solver itself is invoked by "check", not by this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		clauses := cmdutil.GetStringArray(cmd, "constraint")

		leaves := make([]ast.Constraint, 0, len(clauses))
		for _, c := range clauses {
			leaves = append(leaves, parseClause(c))
		}

		fmt.Print(smt.GenerateSMTLib(leaves))
	},
}

func init() {
	rootCmd.AddCommand(smtLibCmd)
	smtLibCmd.Flags().StringArray("constraint", nil, `a "left op right" clause, repeatable`)
	_ = smtLibCmd.MarkFlagRequired("constraint")
}
