// Package util holds small flag-extraction helpers shared by every
// subcommand: panic-free reads that print the underlying error and
// exit with a distinct code rather than propagate a typed error up
// through cobra.
package util

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// GetFlag reads an expected bool flag, or exits the process if cobra
// itself reports an error (a missing/mistyped flag is a programmer
// error in the command's own flag registration, not a user error).
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString reads an expected string flag.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}

	return r
}

// GetUint reads an expected unsigned integer flag.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(4)
	}

	return r
}

// GetStringArray reads an expected repeated string flag.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(5)
	}

	return r
}
