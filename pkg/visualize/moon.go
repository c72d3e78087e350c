// Package visualize renders the moon as an inline SVG disc.
package visualize

import (
	"fmt"
	"io"
	"math"
)

const (
	size   = 100
	half   = size / 2
	radius = 45

	discColor = "#1d3557"
	litColor  = "#f1faee"
)

// Moon draws a moon disc with the given illuminated fraction. The lit limb
// is on the right while waxing and on the left while waning, as seen from
// the northern hemisphere.
type Moon struct {
	illumination float64
	waxing       bool
}

func New(illumination float64, waxing bool) *Moon {
	return &Moon{
		illumination: math.Max(0, math.Min(1, illumination)),
		waxing:       waxing,
	}
}

// Encode writes the SVG to w.
func (img *Moon) Encode(w io.Writer) (int, error) {
	var n int
	var err error
	io := func(nextn int, nexterr error) {
		n += nextn
		if nexterr != nil {
			err = nexterr
		}
	}

	io(fmt.Fprintf(w, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, size, size))
	io(fmt.Fprintf(w, `<circle class="disc" cx="%d" cy="%d" r="%d" fill="%s"/>`,
		half, half, radius, discColor))

	// A nearly dark disc has no lit region worth drawing.
	if img.illumination >= 0.01 {
		io(fmt.Fprintf(w, `<path class="lit" fill="%s" d="%s"/>`, litColor, img.litPath()))
	}

	io(fmt.Fprintf(w, `</svg>`))

	return n, err
}

// litPath traces the sunlit region: down the outer limb on the bright side,
// then back up the terminator. The terminator is an ellipse whose x radius
// shrinks to zero at the quarters and bulges toward the dark side past
// them.
func (img *Moon) litPath() string {
	top := half - radius
	bottom := half + radius

	// Limb sweep: 1 hugs the right edge, 0 the left.
	limbSweep := 0
	if img.waxing {
		limbSweep = 1
	}

	// Terminator x radius, signed. Positive bulges toward the lit side
	// (gibbous), negative toward the dark side (crescent).
	rx := (2*img.illumination - 1) * radius
	termSweep := limbSweep
	if rx > 0 {
		termSweep = 1 - limbSweep
	}

	return fmt.Sprintf("M %d,%d A %d,%d 0 0,%d %d,%d A %.2f,%d 0 0,%d %d,%d Z",
		half, top,
		radius, radius, limbSweep, half, bottom,
		math.Abs(rx), radius, termSweep, half, top)
}
