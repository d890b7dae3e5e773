package bench

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Summary holds the timing statistics for one benchmark over several samples.
// All values are seconds.
type Summary struct {
	Median float64 `json:"median_s"`
	Min    float64 `json:"min_s"`
	Max    float64 `json:"max_s"`
	StdDev float64 `json:"stddev_s"`
}

// Measure runs fn samples times and aggregates the elapsed durations.
// A panic inside fn is recovered and returned as an error so one broken
// benchmark does not take the rest of the suite down with it.
func Measure(fn Func, samples int) (Summary, Outcome, error) {
	if samples < 1 {
		return Summary{}, Outcome{}, fmt.Errorf("samples must be >= 1, got %d", samples)
	}

	durations := make([]time.Duration, 0, samples)
	var last Outcome

	for i := 0; i < samples; i++ {
		out, err := runSample(fn)
		if err != nil {
			return Summary{}, Outcome{}, fmt.Errorf("sample %d/%d: %w", i+1, samples, err)
		}
		durations = append(durations, out.Elapsed)
		last = out
	}

	return Summarize(durations), last, nil
}

func runSample(fn Func) (out Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("benchmark panicked: %v", r)
		}
	}()
	return fn(), nil
}

// Summarize computes median/min/max/population standard deviation over the
// given durations, in seconds.
func Summarize(durations []time.Duration) Summary {
	if len(durations) == 0 {
		return Summary{}
	}
	secs := make([]float64, len(durations))
	for i, d := range durations {
		secs[i] = d.Seconds()
	}
	sort.Float64s(secs)

	n := len(secs)
	var median float64
	if n%2 == 1 {
		median = secs[n/2]
	} else {
		median = (secs[n/2-1] + secs[n/2]) / 2
	}

	var sum float64
	for _, s := range secs {
		sum += s
	}
	mean := sum / float64(n)

	var variance float64
	for _, s := range secs {
		variance += (s - mean) * (s - mean)
	}
	variance /= float64(n)

	return Summary{
		Median: median,
		Min:    secs[0],
		Max:    secs[n-1],
		StdDev: math.Sqrt(variance),
	}
}
