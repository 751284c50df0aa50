// Package cmd assembles the demo CLI's command tree: a cobra root
// plus the add, check, emit, smt-lib, and serve subcommands, with a
// persistent --verbose flag and Execute()/os.Exit(1) on error.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	cmdutil "github.com/AbS224/Intent-coding/pkg/cmd/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in when building with a release pipeline; left
// empty for a plain "go install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "intentc",
	Short: "Compiles natural-language requirements into verified, multi-target source.",
	Long: `intentc builds a typed Intent-AST from declared constraints, checks its
satisfiability with an external SMT decision procedure, and emits verified
source code across seven target languages.`,
	Run: func(cmd *cobra.Command, args []string) {
		if cmdutil.GetFlag(cmd, "version") {
			fmt.Print("intentc ")

			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}

			fmt.Println()

			return
		}

		_ = cmd.Help()
	},
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug-level logging")
	rootCmd.Flags().Bool("version", false, "print version information")

	cobra.OnInitialize(func() {
		if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
			log.SetLevel(log.DebugLevel)
		}
	})
}
