package aoc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// maxReadFailures is the number of consecutive read errors after which
// the input is considered unreadable.
const maxReadFailures = 8

// ForEachLine calls onLine for each line read from r, in order.
// The y value is the row number, starting with 0.
//
// A line that fails to read still takes a row number but is logged and
// skipped; reading resumes with the next line. ForEachLine only returns
// an error once r has failed maxReadFailures times in a row.
func ForEachLine(r io.Reader, log *zap.SugaredLogger, onLine func(y int, line string)) error {
	log = orNop(log)
	br := bufio.NewReader(r)
	failures := 0
	for y := 0; ; y++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			failures++
			log.Warnw("skipping unreadable line", "line", y+1, "error", err)
			if failures >= maxReadFailures {
				return fmt.Errorf("reading line %d: %w", y+1, err)
			}
			continue
		}
		failures = 0
		if err == io.EOF && line == "" {
			return nil
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		onLine(y, line)
		if err == io.EOF {
			return nil
		}
	}
}

func orNop(log *zap.SugaredLogger) *zap.SugaredLogger {
	if log == nil {
		return zap.NewNop().Sugar()
	}
	return log
}
