// Package lines picks a uniformly random line out of line-delimited text.
// It backs the flavor text on the dashboard but knows nothing about moons.
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
)

// ErrMissingAsset indicates a requested text asset does not exist.
var ErrMissingAsset = errors.New("missing asset")

// Random reads r to its end and returns one of its lines chosen uniformly
// at random. An empty reader yields an empty string.
func Random(r io.Reader) (string, error) {
	return random(r, rand.Float64)
}

// random performs Random's work with the randomness factored out. This is
// reservoir sampling with a reservoir of one: at line n (counting from
// zero) the current selection is replaced with probability 1/(n+1), which
// leaves every line equally likely once the scan finishes.
func random(r io.Reader, randFloat func() float64) (string, error) {
	scanner := bufio.NewScanner(r)
	var selected string
	n := 0
	for scanner.Scan() {
		if randFloat() < 1/float64(n+1) {
			selected = scanner.Text()
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return selected, nil
}

// FromFile returns a random line of the file at path. A nonexistent file
// surfaces as ErrMissingAsset.
func FromFile(path string) (string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrMissingAsset, path)
	}
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Random(f)
}
