// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: solver registration, sample checking and input handling.
package aoc

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"tailscale.com/util/must"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without input
// reuses the input of the sample before it.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				if s.input == "" {
					s.input = lastInput
				}
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is the state handed to a solver while one part runs. Solvers
// embed a *Puzzle and read their input through it.
type Puzzle struct {
	SampleMode bool

	// Log is the run's logger. Debug output only shows with --debug.
	Log *zap.SugaredLogger

	solver  partSolver
	samples map[string]sample
	input   []byte
}

// Input returns the raw input of the running part: the sample input in
// sample mode, the real input otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.samples[p.solver.Name].input)
	}
	return p.input
}

func (p *Puzzle) Reader() io.Reader {
	return bytes.NewReader(p.Input())
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	must.Do(ForEachLine(p.Reader(), p.Log, onLine))
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}. x must be
// a pointer to a struct and the methods must have the signature
// func() any.
func extractMethods(x any) (map[int]day, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("register: got %T; want pointer to struct", x)
	}
	v := rv.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("register: %s has signature %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// Options selects what Run solves and where it reads and writes.
type Options struct {
	// Day to run. -1 runs every registered day.
	Day int
	// Part to run. Empty runs every part of the day.
	Part string

	OnlySample bool
	SkipSample bool
	Debug      bool

	// Input overrides the cached input file. A missing file is fatal.
	Input string

	Config *Config
	Log    *zap.SugaredLogger
	// Out receives one line per solved part holding the answer.
	Out io.Writer
}

// Run solves the registered days of slvr. src is the solver's source,
// used to extract samples from its doc comments.
func Run(year int, src []byte, slvr any, opts Options) error {
	if opts.Config == nil {
		opts.Config = DefaultConfig()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	opts.Log = orNop(opts.Log)

	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if opts.Day != -1 {
		day, ok := days[opts.Day]
		if !ok {
			return fmt.Errorf("day %d not implemented", opts.Day)
		}
		return runDay(slvr, year, day, samples, &opts)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		if err := runDay(slvr, year, days[d], samples, &opts); err != nil {
			return err
		}
	}
	return nil
}

func runDay(slvr any, year int, day day, samples map[string]sample, opts *Options) error {
	p := Puzzle{
		samples: samples,
		Log:     opts.Log.With("day", day.day),
	}
	if !opts.OnlySample {
		// Load the input first so a missing file fails before anything is solved.
		in, err := loadInput(year, day.day, opts)
		if err != nil {
			return err
		}
		p.input = in
	}
	p.Log.Debug("running day")
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		if opts.Part != "" && ps.Part != opts.Part {
			continue
		}
		p.solver = ps
		for _, sm := range []bool{true, false} {
			if !sm && opts.OnlySample {
				continue
			} else if sm && opts.SkipSample {
				continue
			}
			p.SampleMode = sm
			if err := runPart(&p, ps, opts.Out); err != nil {
				return err
			}
		}
	}
	return nil
}

func runPart(p *Puzzle, ps partSolver, out io.Writer) (err error) {
	defer func() {
		switch r := recover().(type) {
		case nil:
		case error:
			err = fmt.Errorf("%s: %w", ps.Name, r)
		default:
			err = fmt.Errorf("%s: %v", ps.Name, r)
		}
	}()
	log := p.Log.With("part", ps.Part)
	if p.SampleMode {
		s, ok := p.samples[ps.Name]
		if !ok {
			return fmt.Errorf("no sample found for %v", ps.Name)
		}
		t0 := time.Now()
		got := fmt.Sprint(ps.fn())
		if got != s.want {
			return fmt.Errorf("part %s sample: got %v ❌; want %v", ps.Part, got, s.want)
		}
		log.Infof("sample: %v ✅ (%v)", got, time.Since(t0).Round(time.Microsecond))
		return nil
	}
	t0 := time.Now()
	got := ps.fn()
	log.Infof("took %v", time.Since(t0).Round(time.Microsecond))
	_, err = fmt.Fprintln(out, got)
	return err
}

func loadInput(year, day int, opts *Options) ([]byte, error) {
	if opts.Input != "" {
		in, err := os.ReadFile(opts.Input)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return in, nil
	}
	return fileOrFetch(opts.Config.inputPath(year, day),
		fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day),
		opts.Config.SessionFile)
}

func fileOrFetch(filename, url, sessionFile string) ([]byte, error) {
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}
	body, err := fetch(url, sessionFile)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func fetch(url, sessionFile string) ([]byte, error) {
	session, err := os.ReadFile(sessionFile)
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: strings.TrimSpace(string(session))})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
