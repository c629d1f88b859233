// Command ugeninfo prints the impulse response of delay-based unit generators.
//
// Usage:
//
//	ugeninfo [flags] [kind ...]
//
// Without arguments it prints info for every known kind.
//
// Examples:
//
//	ugeninfo echo
//	ugeninfo -size 100 -feedback 0.5 echo flanger
//	ugeninfo -freq 440 ks
//	ugeninfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/delay"
	"github.com/cwbudde/algo-ugen/dsp/effects"
	"github.com/cwbudde/algo-ugen/dsp/effects/modulation"
	"github.com/cwbudde/algo-ugen/dsp/osc"
	"github.com/cwbudde/algo-ugen/dsp/synth"
	"github.com/cwbudde/algo-ugen/measure/response"
)

type params struct {
	sampleRate float64
	size       int
	offset     int
	feedback   float64
	dry        float64
	wet        float64
	rateHz     float64
	lfoIndex   float64
	freqHz     float64
	ksFeedback float64
	b1         float64
}

type kindEntry struct {
	name  string
	about string
	build func(p params) (core.Ticker, error)
}

var registry = []kindEntry{
	{"line", "fixed delay of -size samples", buildLine},
	{"varline", "variable delay, buffer -size, offset -offset", buildVarLine},
	{"echo", "feedback echo of -size samples", buildEcho},
	{"flanger", "sine-swept echo, base delay -size", buildFlanger},
	{"ks", "karplus-strong string at -freq", buildKS},
}

func main() {
	p := params{}
	flag.Float64Var(&p.sampleRate, "sr", 48000, "sample rate in Hz")
	flag.IntVar(&p.size, "size", 8, "delay size in samples")
	flag.IntVar(&p.offset, "offset", 3, "varline read offset in samples")
	flag.Float64Var(&p.feedback, "feedback", 0, "echo and flanger feedback [0, 1]")
	flag.Float64Var(&p.dry, "dry", 0.5, "dry gain; wet defaults to 1-dry")
	flag.Float64Var(&p.wet, "wet", -1, "wet gain (negative means 1-dry)")
	flag.Float64Var(&p.rateHz, "rate", 0.5, "flanger LFO rate in Hz")
	flag.Float64Var(&p.lfoIndex, "index", 0.5, "flanger LFO index [0, 1]")
	flag.Float64Var(&p.freqHz, "freq", 6000, "karplus-strong frequency in Hz")
	flag.Float64Var(&p.ksFeedback, "ksfeedback", -0.1, "karplus-strong direct feedback [-1, 1]")
	flag.Float64Var(&p.b1, "b1", 1, "karplus-strong one-zero coefficient")
	taps := flag.Int("taps", 32, "impulse response length to analyse")
	fftSize := flag.Int("fft", 64, "fft size for the notch search (power of two)")
	depth := flag.Float64("depth", 20, "minimum notch depth in dB below the peak")
	list := flag.Bool("list", false, "list available kinds")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ugeninfo [flags] [kind ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints impulse response taps and comb notches of unit generators.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ugeninfo echo\n")
		fmt.Fprintf(os.Stderr, "  ugeninfo -size 100 -feedback 0.5 echo flanger\n")
		fmt.Fprintf(os.Stderr, "  ugeninfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if p.wet < 0 {
		p.wet = 1 - p.dry
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		log.Fatal("no matching unit generator kinds")
	}

	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		r, err := analyse(e, p, *taps, *fftSize, *depth)
		if err != nil {
			log.Fatalf("%s: %v", e.name, err)
		}

		rows = append(rows, r)
	}

	if err := printRows(os.Stdout, rows); err != nil {
		log.Fatal(err)
	}
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name + "\t" + e.about
	}

	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range names {
		fmt.Fprintln(tw, n)
	}

	_ = tw.Flush()
}

func resolveEntries(names []string) []kindEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]kindEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []kindEntry

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown kind %q (use -list to see available)\n", name)
			continue
		}

		result = append(result, e)
	}

	return result
}

type row struct {
	name    string
	taps    []int
	arrival int
	energy  float64
	notches []int
}

func analyse(e kindEntry, p params, taps, fftSize int, depthDB float64) (row, error) {
	t, err := e.build(p)
	if err != nil {
		return row{}, err
	}

	ir, err := response.Impulse(t, taps)
	if err != nil {
		return row{}, err
	}

	mag, err := response.Magnitude(ir, max(fftSize, nextPow2(taps)))
	if err != nil {
		return row{}, err
	}

	r := row{
		name:    e.name,
		arrival: response.FirstArrival(ir, 1e-12),
		energy:  response.Energy(ir),
		notches: response.Notches(mag, depthDB),
	}

	for i, v := range ir {
		if v != 0 {
			r.taps = append(r.taps, i)
		}
	}

	return r, nil
}

func printRows(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kind\tFirst\tEnergy\tTaps\tNotches [bins]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if _, err := fmt.Fprintf(tw, "----\t-----\t------\t----\t--------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.4f\t%s\t%s\n",
			r.name, r.arrival, r.energy, joinInts(r.taps, 8), joinInts(r.notches, 8)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}

func joinInts(values []int, limit int) string {
	if len(values) == 0 {
		return "-"
	}

	parts := make([]string, 0, min(len(values), limit)+1)
	for i, v := range values {
		if i == limit {
			parts = append(parts, "...")
			break
		}

		parts = append(parts, fmt.Sprint(v))
	}

	return strings.Join(parts, " ")
}

func nextPow2(n int) int {
	p := 2
	for p < n {
		p <<= 1
	}

	return p
}

// ticker drops the concrete type of a constructor result without turning a
// nil pointer into a non-nil interface.
func ticker[T core.Ticker](t T, err error) (core.Ticker, error) {
	if err != nil {
		return nil, err
	}

	return t, nil
}

func buildLine(p params) (core.Ticker, error) {
	return ticker(delay.New(p.size))
}

func buildVarLine(p params) (core.Ticker, error) {
	return ticker(delay.NewVar(p.size, p.offset))
}

func buildEcho(p params) (core.Ticker, error) {
	return ticker(effects.NewEcho(p.size,
		effects.WithEchoFeedback(p.feedback),
		effects.WithEchoMix(p.dry, p.wet),
	))
}

func buildFlanger(p params) (core.Ticker, error) {
	lfo, err := osc.NewSineHz(osc.DefaultSineTable(), p.rateHz, core.WithSampleRate(p.sampleRate))
	if err != nil {
		return nil, err
	}

	return ticker(modulation.NewFlanger(lfo, p.size,
		modulation.WithFlangerLFOIndex(p.lfoIndex),
		modulation.WithFlangerFeedback(p.feedback),
		modulation.WithFlangerMix(p.dry, p.wet),
	))
}

func buildKS(p params) (core.Ticker, error) {
	return ticker(synth.NewKarplusStrong(p.freqHz, p.ksFeedback, p.b1, core.WithSampleRate(p.sampleRate)))
}
