package main

import (
	"fmt"
	"os"

	"github.com/osakanaya/beginningee6-chapter03/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chapter03:", err)
		os.Exit(1)
	}
}
