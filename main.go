package main

import (
	"fmt"
	"os"

	"github.com/johndpope/tgen/app"
)

func main() {
	cmd := app.AllCommands(os.Args[0])
	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
