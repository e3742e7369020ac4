// Package main provides the windgen CLI tool for generating utility-class
// stylesheets from scanned content.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "windgen: %v\n", err)
		os.Exit(1)
	}
}
