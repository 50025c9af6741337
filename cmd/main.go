package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pwiecz/hex_walk/lib"
)

const defaultFilename = "example"

func run(args []string, stdout io.Writer) error {
	filename := defaultFilename
	if len(args) > 1 {
		filename = args[1]
	}
	fsys := os.DirFS(filepath.Dir(filename))
	directions, err := lib.ReadDirections(fsys, filepath.Base(filename))
	if err != nil {
		return fmt.Errorf("cannot load directions from %s (%w)", filename, err)
	}

	result := lib.Walk(directions)
	fmt.Fprintf(stdout, "Hops = %d\n", result.Hops)
	fmt.Fprintf(stdout, "Max Hops = %d\n", result.MaxHops)
	return nil
}

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
