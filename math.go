package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/must"
)

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if !IsDigit(r) {
		panic(fmt.Sprintf("not a digit: %q", r))
	}
	return int(r - '0')
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Int returns the int value of the string.
func Int(s string) int {
	return must.Get(strconv.Atoi(strings.TrimSpace(s)))
}
