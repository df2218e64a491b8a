package dice

import (
	"math/rand"
	"time"
)

// Roller is the random source every game mechanic draws from.
// *rand.Rand satisfies it.
type Roller interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// New returns a seeded roller. A zero seed falls back to the current time.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return rand.New(rand.NewSource(seed))
}

// Fixed is a deterministic roller for tests. Float64 always returns Value;
// Intn pops scripted values in order, wrapping each into [0, n), and
// returns 0 once the script is exhausted.
type Fixed struct {
	Value float64
	Ints  []int
}

// Midpoint returns a roller whose float draws make the damage spread
// contribute nothing.
func Midpoint(ints ...int) *Fixed {
	return &Fixed{Value: 0.5, Ints: ints}
}

func (f *Fixed) Float64() float64 {
	return f.Value
}

func (f *Fixed) Intn(n int) int {
	if len(f.Ints) == 0 || n <= 0 {
		return 0
	}
	v := f.Ints[0]
	f.Ints = f.Ints[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}
