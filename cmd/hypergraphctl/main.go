// Package main provides the hypergraphctl CLI entry point, a thin outer
// consumer of pkg/vectorindex, pkg/hyperbolic, and pkg/traversal — the core
// engine itself is CLI-free per spec §1.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "hypergraphctl",
		Short: "hypergraphctl - inspect and drive the hypergraph engine core",
		Long: `hypergraphctl exercises the vector index, hyperbolic entailment
cones, and graph traversal primitives from the command line:

  • train / add / search over a FaissGpuIndex
  • contains / score for entailment-cone membership
  • bfs over a Badger-backed demo graph
  • entails checks between that graph's nodes`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hypergraphctl v%s\n", version)
		},
	})

	rootCmd.AddCommand(newIndexCmd())
	rootCmd.AddCommand(newConeCmd())
	rootCmd.AddCommand(newGraphCmd())
	rootCmd.AddCommand(newEntailsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
