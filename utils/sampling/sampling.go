// Package sampling generates random coefficients and evaluation points.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Uint64 returns a uniform value in [0, 2^64) read from r.
func Uint64(r io.Reader) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(r, b); err != nil {
		panic(fmt.Errorf("cannot Uint64: %w", err))
	}
	return binary.LittleEndian.Uint64(b)
}

// Float64 returns a uniform value in [min, max) read from r.
func Float64(r io.Reader, min, max float64) float64 {
	// 53 random bits scaled to [0, 1)
	f := float64(Uint64(r)>>11) / (1 << 53)
	return min + f*(max-min)
}

// Int64 returns a uniform value in [min, max] read from r.
// The modulo bias is negligible for the small ranges used here.
func Int64(r io.Reader, min, max int64) int64 {
	if max < min {
		panic(fmt.Errorf("cannot Int64: max=%d < min=%d", max, min))
	}
	return min + int64(Uint64(r)%uint64(max-min+1))
}

// Float64s returns n values drawn with [Float64].
func Float64s(r io.Reader, n int, min, max float64) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = Float64(r, min, max)
	}
	return
}

// Int64s returns n values drawn with [Int64].
func Int64s(r io.Reader, n int, min, max int64) (v []int64) {
	v = make([]int64, n)
	for i := range v {
		v[i] = Int64(r, min, max)
	}
	return
}
