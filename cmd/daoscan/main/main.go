package main

import (
	"fmt"
	"os"

	"github.com/azlands/daoscan/cmd/daoscan"
	"github.com/azlands/daoscan/pkg/display"
)

func main() {
	rootCmd := daoscan.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := display.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
