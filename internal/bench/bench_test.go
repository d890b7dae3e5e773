package bench

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPrimes(t *testing.T) {
	assert.Equal(t, 0, CountPrimes(2))
	assert.Equal(t, 4, CountPrimes(10))   // 2 3 5 7
	assert.Equal(t, 25, CountPrimes(100))
	assert.Equal(t, 168, CountPrimes(1000))
}

func TestCountPrimesMillion(t *testing.T) {
	// The headline correctness check: exactly 78,498 primes below 1,000,000.
	assert.Equal(t, 78498, CountPrimes(1_000_000))
}

func TestEstimatePi(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	estimate := EstimatePi(2_000_000, rng)
	assert.InDelta(t, math.Pi, estimate, 0.05)
}

func TestHashChain(t *testing.T) {
	seed := []byte(hashSeed)

	// zero rounds is the identity
	assert.Equal(t, seed, HashChain(seed, 0))

	// deterministic
	a := HashChain(seed, 100)
	b := HashChain(seed, 100)
	require.Len(t, a, 32)
	assert.Equal(t, a, b)

	// chaining composes
	assert.Equal(t, HashChain(seed, 5), HashChain(HashChain(seed, 2), 3))
}

func TestSuite(t *testing.T) {
	cfg := QuickConfig()

	suite := cfg.Suite(false)
	require.Len(t, suite, 3)
	assert.Equal(t, NamePrimes, suite[0].Name)
	assert.Equal(t, NamePi, suite[1].Name)
	assert.Equal(t, NameHashing, suite[2].Name)

	withMem := cfg.Suite(true)
	require.Len(t, withMem, 4)
	assert.Equal(t, NameMemory, withMem[3].Name)
}

func TestSuiteOutcomes(t *testing.T) {
	cfg := QuickConfig()
	for _, b := range cfg.Suite(true) {
		out := b.Run()
		assert.NotEmpty(t, out.Value, b.Name)
		assert.Greater(t, out.Elapsed.Seconds(), 0.0, b.Name)
	}
}
