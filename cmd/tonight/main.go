package main

import (
	"fmt"

	"github.com/spencer-p/moondash/pkg/clock"
	"github.com/spencer-p/moondash/pkg/moon"
	"github.com/spencer-p/moondash/pkg/report"
	"github.com/spencer-p/moondash/pkg/sunset"
)

func main() {
	clk := clock.Real{}

	phase := moon.Tonight(clk)
	fmt.Printf("Tonight's moon: %s\n", phase.Name())

	rep := report.New(clk.Now().UTC().AddDate(0, 0, 1), sunset.SantaCruz)
	fmt.Printf("%s\n", rep.String())
}
