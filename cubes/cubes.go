// Package cubes plays the cube game: an elf draws handfuls of red, green
// and blue cubes from a bag, and each line of input records one game.
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
package cubes

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aocgo/aoc"
	"go.uber.org/zap"
)

// ErrFormat is returned for a line that does not follow the game grammar.
var ErrFormat = errors.New("malformed game")

// Set is a number of cubes of each color: one handful, or a bag.
type Set struct {
	Red, Green, Blue int
}

// Bag is the bag the elf asks about.
var Bag = Set{Red: 12, Green: 13, Blue: 14}

// Fits reports whether s could be drawn from bag.
func (s Set) Fits(bag Set) bool {
	return s.Red <= bag.Red && s.Green <= bag.Green && s.Blue <= bag.Blue
}

// Power is the product of the three counts.
func (s Set) Power() int {
	return s.Red * s.Green * s.Blue
}

type Game struct {
	ID   int
	Sets []Set
}

// Possible reports whether every handful of g fits in bag.
func (g Game) Possible(bag Set) bool {
	for _, s := range g.Sets {
		if !s.Fits(bag) {
			return false
		}
	}
	return true
}

// Minimum returns the fewest cubes of each color the bag must have held
// for g to be possible.
func (g Game) Minimum() Set {
	var m Set
	for _, s := range g.Sets {
		m.Red = max(m.Red, s.Red)
		m.Green = max(m.Green, s.Green)
		m.Blue = max(m.Blue, s.Blue)
	}
	return m
}

// ParseGame parses one line of input.
func ParseGame(line string) (Game, error) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrFormat, line)
	}
	idStr, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing \"Game\" in %q", ErrFormat, head)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return Game{}, fmt.Errorf("%w: game id %q", ErrFormat, idStr)
	}
	g := Game{ID: id}
	for _, handful := range strings.Split(rest, ";") {
		s, err := parseSet(handful)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		g.Sets = append(g.Sets, s)
	}
	return g, nil
}

func parseSet(handful string) (Set, error) {
	var s Set
	for _, cube := range strings.Split(handful, ",") {
		f := strings.Fields(cube)
		if len(f) != 2 {
			return Set{}, fmt.Errorf("%w: cubes %q", ErrFormat, cube)
		}
		n, err := strconv.Atoi(f[0])
		if err != nil || n < 0 {
			return Set{}, fmt.Errorf("%w: count %q", ErrFormat, f[0])
		}
		switch f[1] {
		case "red":
			s.Red += n
		case "green":
			s.Green += n
		case "blue":
			s.Blue += n
		default:
			return Set{}, fmt.Errorf("%w: color %q", ErrFormat, f[1])
		}
	}
	return s, nil
}

// SumPossible returns the sum of the IDs of the games read from r that
// are possible with bag.
func SumPossible(r io.Reader, bag Set, log *zap.SugaredLogger) (int, error) {
	var ids []int
	err := forGames(r, log, func(g Game) {
		if g.Possible(bag) {
			ids = append(ids, g.ID)
		}
	})
	return aoc.Sum(ids...), err
}

// SumPower returns the sum of the powers of the minimum sets of the
// games read from r.
func SumPower(r io.Reader, log *zap.SugaredLogger) (int, error) {
	var powers []int
	err := forGames(r, log, func(g Game) {
		powers = append(powers, g.Minimum().Power())
	})
	return aoc.Sum(powers...), err
}

// forGames calls onGame for each game read from r. It stops at the
// first line that does not parse.
func forGames(r io.Reader, log *zap.SugaredLogger, onGame func(Game)) error {
	var perr error
	err := aoc.ForEachLine(r, log, func(y int, line string) {
		if perr != nil {
			return
		}
		g, err := ParseGame(line)
		if err != nil {
			perr = fmt.Errorf("line %d: %w", y+1, err)
			return
		}
		onGame(g)
	})
	if perr != nil {
		return perr
	}
	return err
}
