// Command scenedemo builds the widget showcase scene and shows its render
// tree in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/sceneui/cmd/scenedemo/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
