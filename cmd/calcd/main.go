package main

import (
	"fmt"
	"os"

	"calcd/internal/log"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()
	rootCmd.Version = version

	err := rootCmd.Execute()
	log.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
