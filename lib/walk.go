package lib

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"iter"
)

type Result struct {
	Final   Coord
	Hops    int
	MaxHops int
}

// MaxHops is the largest distance from the origin along the path.
// Empty path never leaves the origin, so it's 0.
func MaxHops(path iter.Seq[Coord]) int {
	maxHops := 0
	for c := range path {
		maxHops = Max(maxHops, c.Hops())
	}
	return maxHops
}

// Walk follows directions starting from the origin.
func Walk(directions []Direction) Result {
	var origin Coord
	final := origin.Steps(directions)
	return Result{
		Final:   final,
		Hops:    final.Hops(),
		MaxHops: MaxHops(origin.Path(directions)),
	}
}

func ReadDirections(fsys fs.FS, filename string) ([]Direction, error) {
	fileData, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s file (%w)", filename, err)
	}
	return ParseDirections(bytes.NewReader(fileData))
}

// ParseDirections reads comma separated directions until EOF.
func ParseDirections(reader io.Reader) ([]Direction, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("cannot read directions (%w)", err)
	}
	return ParseDirectionList(string(data))
}
