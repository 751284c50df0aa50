package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AbS224/Intent-coding/pkg/ast"
	cmdutil "github.com/AbS224/Intent-coding/pkg/cmd/util"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [flags] \"requirement text\"",
	Short: "construct a Requirement and print it as JSON.",
	Long: `Constructs a Requirement from free-text content plus zero or more
--constraint "left op right" clauses, assigns it a fresh id, and prints the
result as JSON. This command performs no natural-language parsing of the
text itself — that grammar is an external collaborator; any
constraints attached to the requirement come only from --constraint flags.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		clauses := cmdutil.GetStringArray(cmd, "constraint")

		req := ast.NewRequirement(args[0])

		if len(clauses) > 0 {
			tree := buildTree(clauses)
			ast.ForEachLeaf(tree, func(c ast.Constraint) {
				req.Constraints = append(req.Constraints, c)
			})
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if err := enc.Encode(req); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringArray("constraint", nil, `a "left op right" clause, repeatable`)
}
