package calibration

import "github.com/aocgo/aoc"

// Pair is the first and last digit seen on a line so far.
// The zero value holds no digit.
type Pair struct {
	first, last int
	ok          bool
}

// Add folds d into p. The first digit added stays first; every later
// digit replaces the last one.
func (p Pair) Add(d int) Pair {
	if !p.ok {
		return Pair{first: d, last: d, ok: true}
	}
	p.last = d
	return p
}

// Value returns first*10 + last, or 0 if no digit was added.
func (p Pair) Value() int {
	if !p.ok {
		return 0
	}
	return p.first*10 + p.last
}

// extractDigit folds r into p if it is a digit character.
func extractDigit(r rune, p Pair) Pair {
	if !aoc.IsDigit(r) {
		return p
	}
	return p.Add(aoc.Digit(r))
}
