// Package main provides the semschema binary entry point.
// Semschema manages the shared domain ontology for network participants:
// format detection, schema statistics, peer consistency checks, and
// transaction validation.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
