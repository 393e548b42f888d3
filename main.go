package main

import (
	"fmt"
	"os"

	"mdmerge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mdmerge: %v\n", err)
		os.Exit(1)
	}
}
