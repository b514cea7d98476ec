// Command aoc2023 solves Advent of Code 2023.
//
//	aoc2023 --day 1 --part 2 --input day-1/input
package main

import (
	_ "embed"
	"os"

	"github.com/aocgo/aoc"
	"github.com/aocgo/aoc/calibration"
	"github.com/aocgo/aoc/cubes"
	"tailscale.com/util/must"
)

func main() {
	if err := aoc.Command(2023, source, &solver{}).Execute(); err != nil {
		os.Exit(1)
	}
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return must.Get(calibration.Total(s.Reader(), false, s.Log))
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return must.Get(calibration.Total(s.Reader(), true, s.Log))
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	return must.Get(cubes.SumPossible(s.Reader(), cubes.Bag, s.Log))
}

// want=2286
func (s solver) D2p2() any {
	return must.Get(cubes.SumPower(s.Reader(), s.Log))
}
