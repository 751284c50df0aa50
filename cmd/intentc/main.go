// Command intentc is the demo CLI: it builds constraints on the
// command line, checks them against an external SMT solver, emits
// verified source in one of seven target languages, prints the
// diagnostic SMT-LIB rendering, or serves the HTTP ingress facade.
package main

import "github.com/AbS224/Intent-coding/pkg/cmd"

func main() {
	cmd.Execute()
}
