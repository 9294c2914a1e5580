package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/openwith/cmd/openwith"
)

func main() {
	rootCmd := openwith.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
