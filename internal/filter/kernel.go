package filter

import (
	"math"
	"sync"
)

// ShadowTaps is the number of taps in the shadow kernel.
const ShadowTaps = 71

// shadowScale converts kernel weights to integers.
const shadowScale = 10000

// Kernel is a symmetric 1D convolution kernel with integer weights.
// The zero value is an empty kernel.
type Kernel struct {
	weights []uint32
	sum     uint32
}

// NewShadowKernel computes the shadow kernel. Tap i has weight
// exp(-(i-35)²/71)·10000 truncated toward zero. The exponent divides by the
// tap count, so this is not a normalized Gaussian.
func NewShadowKernel() Kernel {
	half := ShadowTaps / 2
	k := Kernel{weights: make([]uint32, ShadowTaps)}
	for i := range k.weights {
		f := float64(i - half)
		k.weights[i] = uint32(math.Exp(-f*f/ShadowTaps) * shadowScale)
		k.sum += k.weights[i]
	}
	return k
}

// ShadowKernel returns the shared shadow kernel, computed on first use.
// Callers must not modify it; use Weights for a private copy.
var ShadowKernel = sync.OnceValue(NewShadowKernel)

// Len returns the number of taps.
func (k Kernel) Len() int {
	return len(k.weights)
}

// Weight returns the weight of tap i.
func (k Kernel) Weight(i int) uint32 {
	return k.weights[i]
}

// Weights returns a copy of the tap weights.
func (k Kernel) Weights() []uint32 {
	return append([]uint32(nil), k.weights...)
}

// Sum returns the normalization constant, the sum of all weights.
func (k Kernel) Sum() uint32 {
	return k.sum
}

// Half returns the index of the center tap.
func (k Kernel) Half() int {
	return len(k.weights) / 2
}
