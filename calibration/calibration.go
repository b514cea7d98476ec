package calibration

import (
	"io"
	"unicode"

	"github.com/aocgo/aoc"
	"go.uber.org/zap"
)

// Value returns the calibration value of line: its first and last digit
// as a two-digit number, or 0 if the line holds no digit. With spelled
// set, the words "one" through "nine" count as digits too.
func Value(line string, spelled bool) int {
	var (
		p  Pair
		rc Recognizer
	)
	for _, r := range line {
		switch {
		case aoc.IsDigit(r):
			rc.Reset()
			p = extractDigit(r, p)
		case !spelled:
		case unicode.IsLetter(r):
			if d, ok := rc.Feed(r); ok {
				p = p.Add(d)
			}
		default:
			rc.Reset()
		}
	}
	return p.Value()
}

// Total returns the sum of the calibration values of every line read
// from r. Lines that fail to read count as 0 and are logged.
func Total(r io.Reader, spelled bool, log *zap.SugaredLogger) (int, error) {
	total := 0
	err := aoc.ForEachLine(r, log, func(y int, line string) {
		v := Value(line, spelled)
		if log != nil {
			log.Debugw("calibration value", "line", y+1, "value", v)
		}
		total += v
	})
	return total, err
}
