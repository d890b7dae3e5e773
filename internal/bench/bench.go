// Package bench contains the micro-benchmark functions and the statistics
// aggregator that times them. The computations are deliberately naive
// reference implementations (trial division, textbook Monte Carlo, chained
// SHA-256): the point is to load the CPU the same way on every machine, not
// to be fast.
package bench

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"time"
)

// Benchmark names as stored in result records.
const (
	NamePrimes  = "primes"
	NamePi      = "pi"
	NameHashing = "hashing"
	NameMemory  = "memory"
)

const hashSeed = "benchmarking_is_fun!"

// Outcome is what a single benchmark run produces: a human-readable result
// value and the time the timed section took.
type Outcome struct {
	Value   string
	Elapsed time.Duration
}

// Func runs one benchmark sample. Warmup happens inside, before timing starts.
type Func func() Outcome

// Config carries the iteration counts for the suite. Tests and the --quick
// flag shrink them.
type Config struct {
	PrimeLimit   int
	PiIterations int
	HashRounds   int
	MemoryWords  int // uint64 words in the bandwidth buffer
}

// DefaultConfig returns the standard iteration counts.
func DefaultConfig() Config {
	return Config{
		PrimeLimit:   1_000_000,
		PiIterations: 10_000_000,
		HashRounds:   5_000_000,
		MemoryWords:  32 << 20, // 256 MiB
	}
}

// QuickConfig returns reduced counts for smoke runs.
func QuickConfig() Config {
	return Config{
		PrimeLimit:   50_000,
		PiIterations: 200_000,
		HashRounds:   50_000,
		MemoryWords:  1 << 20, // 8 MiB
	}
}

// Suite returns the benchmarks to run, in display order.
func (c Config) Suite(withMemory bool) []Benchmark {
	suite := []Benchmark{
		{Name: NamePrimes, Run: c.Primes},
		{Name: NamePi, Run: c.Pi},
		{Name: NameHashing, Run: c.Hashing},
	}
	if withMemory {
		suite = append(suite, Benchmark{Name: NameMemory, Run: c.Memory})
	}
	return suite
}

// Benchmark pairs a stable name with its run function.
type Benchmark struct {
	Name string
	Run  Func
}

// CountPrimes counts primes below limit by trial division.
func CountPrimes(limit int) int {
	count := 0
	for num := 2; num < limit; num++ {
		if isPrime(num) {
			count++
		}
	}
	return count
}

func isPrime(n int) bool {
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return n >= 2
}

// Primes counts primes below the configured limit.
func (c Config) Primes() Outcome {
	// warmup
	for num := 2; num < 500; num++ {
		_ = isPrime(num)
	}

	start := time.Now()
	count := CountPrimes(c.PrimeLimit)
	elapsed := time.Since(start)

	return Outcome{
		Value:   fmt.Sprintf("%d primes below %d", count, c.PrimeLimit),
		Elapsed: elapsed,
	}
}

// EstimatePi estimates π by sampling points in the unit square and counting
// how many fall inside the quarter circle.
func EstimatePi(iterations int, rng *rand.Rand) float64 {
	inside := 0
	for i := 0; i < iterations; i++ {
		x, y := rng.Float64(), rng.Float64()
		if x*x+y*y <= 1 {
			inside++
		}
	}
	return 4.0 * float64(inside) / float64(iterations)
}

// Pi runs the Monte Carlo π estimation.
func (c Config) Pi() Outcome {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	// warmup
	for i := 0; i < 1000; i++ {
		x, y := rng.Float64(), rng.Float64()
		_ = x*x+y*y <= 1
	}

	start := time.Now()
	estimate := EstimatePi(c.PiIterations, rng)
	elapsed := time.Since(start)

	return Outcome{
		Value:   fmt.Sprintf("pi ≈ %.5f", estimate),
		Elapsed: elapsed,
	}
}

// HashChain feeds each SHA-256 digest back into the next round and returns
// the final digest.
func HashChain(seed []byte, rounds int) []byte {
	data := seed
	for i := 0; i < rounds; i++ {
		sum := sha256.Sum256(data)
		data = sum[:]
	}
	return data
}

// Hashing runs the chained SHA-256 benchmark. The reported value is the
// first 10 hex characters of the final digest.
func (c Config) Hashing() Outcome {
	data := HashChain([]byte(hashSeed), 10_000) // warmup, chained like the timed section

	start := time.Now()
	data = HashChain(data, c.HashRounds)
	elapsed := time.Since(start)

	return Outcome{
		Value:   fmt.Sprintf("sample %s", hex.EncodeToString(data)[:10]),
		Elapsed: elapsed,
	}
}

// Memory sweeps a large buffer with sequential writes then reads and reports
// the combined bandwidth in MB/s.
func (c Config) Memory() Outcome {
	buf := make([]uint64, c.MemoryWords)

	// warmup: touch every page so allocation cost stays out of the timing
	for i := range buf {
		buf[i] = uint64(i)
	}

	start := time.Now()
	for i := range buf {
		buf[i] = uint64(i) ^ 0x9E3779B97F4A7C15
	}
	var sum uint64
	for _, v := range buf {
		sum += v
	}
	elapsed := time.Since(start)

	bytesMoved := float64(len(buf)) * 8 * 2 // one write pass, one read pass
	mbps := bytesMoved / elapsed.Seconds() / 1e6
	_ = sum

	return Outcome{
		Value:   fmt.Sprintf("%.0f MB/s", mbps),
		Elapsed: elapsed,
	}
}
