package calibration

import (
	"strings"
	"unicode"

	"github.com/aocgo/aoc"
)

var words = [...]string{
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// maxWordLen bounds the candidate window.
const maxWordLen = len("three")

// Recognizer finds spelled-out digits in a stream of characters, one
// character at a time. The zero value is ready to use.
type Recognizer struct {
	// window holds the longest run of recent letters that is still a
	// prefix of some word. It is empty after any non-letter.
	window aoc.Queue[rune]
}

// Feed advances the recognizer by r. It reports the digit of the word
// that r completes, if any.
func (rc *Recognizer) Feed(r rune) (digit int, ok bool) {
	if !unicode.IsLetter(r) {
		rc.Reset()
		return 0, false
	}
	rc.window.Push(r)
	rc.trim()
	d := wordDigit(rc.window.Items())
	if d == 0 {
		return 0, false
	}
	// Keep the tail of the word: it may start the next one, as in "twone".
	rc.window.Pop()
	rc.trim()
	return d, true
}

// Reset empties the window.
func (rc *Recognizer) Reset() {
	rc.window.Clear()
}

// trim drops letters from the front of the window until it is a prefix
// of some word, or empty.
func (rc *Recognizer) trim() {
	for rc.window.Len() > 0 && !isWordPrefix(rc.window.Items()) {
		rc.window.Pop()
	}
}

func isWordPrefix(w []rune) bool {
	if len(w) > maxWordLen {
		return false
	}
	s := string(w)
	for _, word := range words {
		if strings.HasPrefix(word, s) {
			return true
		}
	}
	return false
}

// wordDigit returns the digit spelled by w, or 0 if w is not a word.
func wordDigit(w []rune) int {
	s := string(w)
	for i, word := range words {
		if word == s {
			return i + 1
		}
	}
	return 0
}
