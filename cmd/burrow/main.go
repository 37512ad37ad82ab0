// Command burrow prints the minimum energy needed to sort the amphipod burrow:
// first for the folded diagram (rooms two deep), then for its unfolded
// variant (rooms four deep). Each answer is printed on its own line.
//
// The diagram is read from inputs/day_23.txt; without that file the built-in
// puzzle arrangement is used.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/input"
	"github.com/katalvlaran/amphipod/solver"
)

const day = 23

const builtin = `#############
#...........#
###A#D#C#A###
  #C#D#B#B#
  #########`

var log = logrus.New()

func main() {
	text, err := input.Load(day)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("path", input.Path(day)).Info("no input file, using built-in arrangement")
		text = builtin
	case err != nil:
		log.Fatal(err)
	}

	unfolded, err := burrow.Unfold(text)
	if err != nil {
		log.Fatal(err)
	}

	for part, diagram := range []string{text, unfolded} {
		fmt.Println(solve(part+1, diagram))
	}
}

func solve(part int, diagram string) int {
	s, err := burrow.Parse(diagram)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	res, err := solver.Solve(s, solver.WithLogger(log))
	if err != nil {
		log.WithFields(logrus.Fields{"part": part, "depth": s.Depth()}).Fatal(err)
	}
	log.WithFields(logrus.Fields{
		"part":    part,
		"depth":   s.Depth(),
		"states":  res.Stats.States,
		"elapsed": time.Since(start),
	}).Info("search finished")

	return res.Cost
}
