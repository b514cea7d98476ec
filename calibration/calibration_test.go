package calibration

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestValue(t *testing.T) {
	tests := []struct {
		line    string
		digits  int // digit characters only
		spelled int // words count too
	}{
		{"", 0, 0},
		{"1abc2", 12, 12},
		{"pqr3stu8vwx", 38, 38},
		{"a1b2c3d4e5f", 15, 15},
		{"treb7uchet", 77, 77},
		{"two1nine", 11, 29},
		{"eightwothree", 0, 83},
		{"abcone2threexyz", 22, 13},
		{"xtwone3four", 33, 24},
		{"4nineeightseven2", 42, 42},
		{"zoneight234", 24, 14},
		{"7pqrstsixteen", 77, 76},
		{"twone", 0, 21},
		{"oneight", 0, 18},
		{"eightwo", 0, 82},
		{"sevenine", 0, 79},
		{"nineight", 0, 98},
		{"abc", 0, 0},
		{"o-n-e", 0, 0},
		{"on1e", 11, 11},
		{"ONE", 0, 0},
		{"fiveé6", 66, 56},
		{"ttwo", 0, 22},
		{"sseven", 0, 77},
		{"thrthree", 0, 33},
	}
	for _, tt := range tests {
		if got := Value(tt.line, false); got != tt.digits {
			t.Errorf("Value(%q, false) = %d, want %d", tt.line, got, tt.digits)
		}
		if got := Value(tt.line, true); got != tt.spelled {
			t.Errorf("Value(%q, true) = %d, want %d", tt.line, got, tt.spelled)
		}
	}
}

func TestValueMatchesDigitCharacters(t *testing.T) {
	// Without words, the value only depends on the digit characters.
	for _, line := range []string{"x9y", "nine9", "1two3four5", "0zero0"} {
		var ds []int
		for _, r := range line {
			if r >= '0' && r <= '9' {
				ds = append(ds, int(r-'0'))
			}
		}
		want := ds[0]*10 + ds[len(ds)-1]
		if got := Value(line, false); got != want {
			t.Errorf("Value(%q, false) = %d, want %d", line, got, want)
		}
	}
}

func TestRecognizer(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"eightwothree", []int{8, 2, 3}},
		{"twone", []int{2, 1}},
		{"oneight", []int{1, 8}},
		{"zoneight", []int{1, 8}},
		{"xtwonex", []int{2, 1}},
		{"nineninenine", []int{9, 9, 9}},
		{"fivesixseven", []int{5, 6, 7}},
		{"fourfive", []int{4, 5}},
		{"fo ur", nil},
		{"tw1o", nil},
		{"qwerty", nil},
	}
	for _, tt := range tests {
		var rc Recognizer
		var got []int
		for _, r := range tt.in {
			if d, ok := rc.Feed(r); ok {
				got = append(got, d)
			}
		}
		assert.Equal(t, tt.want, got, "Feed(%q)", tt.in)
	}
}

func TestRecognizerWindowIsWordPrefix(t *testing.T) {
	var rc Recognizer
	for _, r := range "abcdefghijklmnopqrstuvwxyz eightwothreeseveneightwonine" {
		rc.Feed(r)
		w := rc.window.Items()
		if len(w) > maxWordLen {
			t.Fatalf("after %q window %q exceeds %d letters", r, string(w), maxWordLen)
		}
		if len(w) > 0 && !isWordPrefix(w) {
			t.Fatalf("after %q window %q is not a word prefix", r, string(w))
		}
	}
	rc.Feed('1')
	if rc.window.Len() != 0 {
		t.Errorf("window %q not cleared by a digit", string(rc.window.Items()))
	}
}

func TestPair(t *testing.T) {
	var p Pair
	if got := p.Value(); got != 0 {
		t.Errorf("empty Pair.Value = %d, want 0", got)
	}
	p = p.Add(4)
	if got := p.Value(); got != 44 {
		t.Errorf("Value after one digit = %d, want 44", got)
	}
	p = p.Add(7).Add(2)
	if got := p.Value(); got != 42 {
		t.Errorf("Value after three digits = %d, want 42", got)
	}
	if got := extractDigit('x', p); got != p {
		t.Errorf("extractDigit('x') changed the pair to %+v", got)
	}
	if got := extractDigit('0', p).Value(); got != 40 {
		t.Errorf("extractDigit('0') value = %d, want 40", got)
	}
}

const (
	sample1 = "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n"
	sample2 = "two1nine\neightwothree\nabcone2threexyz\nxtwone3four\n4nineeightseven2\nzoneight234\n7pqrstsixteen\n"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		spelled bool
		want    int
	}{
		{"digits sample", sample1, false, 142},
		{"spelled sample", sample2, true, 281},
		{"digits on spelled sample", sample2, false, 209},
		{"empty input", "", true, 0},
		{"blank lines", "\n\n", false, 0},
		{
			"long lines",
			"gsntbddbnone4cjqjmspzcsxmvvthreefive\none7three9threeoneonetwo\n8pztdljxbjjthreenineeightseven7crkdr8eightwocb\n",
			true,
			15 + 12 + 82,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Total(strings.NewReader(tt.in), tt.spelled, zap.NewNop().Sugar())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalIsRepeatable(t *testing.T) {
	first, err := Total(strings.NewReader(sample2), true, nil)
	require.NoError(t, err)
	second, err := Total(strings.NewReader(sample2), true, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// failingReader fails once after the first line, then serves the rest.
type failingReader struct {
	reads []string
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.reads) == 0 {
		return 0, io.EOF
	}
	s := r.reads[0]
	r.reads = r.reads[1:]
	if s == "" {
		return 0, errors.New("read failed")
	}
	return copy(p, s), nil
}

func TestTotalSkipsUnreadableLine(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := &failingReader{reads: []string{"1abc2\n", "", "treb7uchet\n"}}

	got, err := Total(r, false, zap.New(core).Sugar())
	require.NoError(t, err)
	assert.Equal(t, 12+77, got)
	assert.Equal(t, 1, logs.Len())
}
