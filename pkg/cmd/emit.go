package cmd

import (
	"fmt"
	"os"

	cmdutil "github.com/AbS224/Intent-coding/pkg/cmd/util"
	"github.com/AbS224/Intent-coding/pkg/emit"
	"github.com/spf13/cobra"
)

var emitCmd = &cobra.Command{
	Use:   "emit [flags]",
	Short: "emit verified source code in one of seven target languages.",
	Long: `Conjoins every --constraint clause into a single tree, builds a Schema from
--field declarations, and renders the matching function/module in --target's
language, following the orchestrator's five-step composition.`,
	Run: func(cmd *cobra.Command, args []string) {
		clauses := cmdutil.GetStringArray(cmd, "constraint")
		fields := cmdutil.GetStringArray(cmd, "field")
		target := cmdutil.GetString(cmd, "target")
		funcName := cmdutil.GetString(cmd, "func")
		trace := cmdutil.GetString(cmd, "trace-id")

		tree := buildTree(clauses)
		sch := buildSchema(trace, fields)

		orchestrator := emit.NewOrchestrator()

		result, err := orchestrator.Emit(tree, sch, emit.Target(target), funcName)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		for _, w := range result.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}

		fmt.Println(result.Code)
	},
}

func init() {
	rootCmd.AddCommand(emitCmd)
	emitCmd.Flags().StringArray("constraint", nil, `a "left op right" clause, repeatable`)
	emitCmd.Flags().StringArray("field", nil, `a "name:type" schema declaration, repeatable`)
	emitCmd.Flags().String("target", "rust", "target language: rust, typescript, python, ada, zig, elixir, solidity")
	emitCmd.Flags().String("func", "validate", "name of the emitted function/module")
	emitCmd.Flags().String("trace-id", "cli-emit", "traceability id embedded in the emitted header")
	_ = emitCmd.MarkFlagRequired("constraint")
}
