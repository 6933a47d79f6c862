package kit

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFT takes the 1D FFT of yi over the evenly spaced coordinates xi and
// returns properly shifted arrays: the output coordinates are the conjugate
// frequencies centered on zero, and the spectrum is shifted to match.
//
// xi must be evenly spaced; otherwise ErrUnevenSpacing is returned.
func FFT(xi, yi []float64) ([]float64, []complex128, error) {
	if len(xi) != len(yi) {
		return nil, nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xi), len(yi))
	}
	if len(xi) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 points", ErrLengthMismatch)
	}
	if err := checkEvenSpacing(xi); err != nil {
		return nil, nil, err
	}

	n := len(xi)
	in := make([]complex128, n)
	for i, v := range yi {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("creating FFT plan: %w", err)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("forward FFT: %w", err)
	}

	d := (xi[n-1] - xi[0]) / float64(n-1)
	freqs := fftFreq(n, d)

	return fftShiftFloat(freqs), fftShiftComplex(out), nil
}

// checkEvenSpacing verifies that consecutive differences of xi agree with
// their mean to within a relative tolerance.
func checkEvenSpacing(xi []float64) error {
	mean := (xi[len(xi)-1] - xi[0]) / float64(len(xi)-1)
	if mean == 0 {
		return fmt.Errorf("%w: zero span", ErrUnevenSpacing)
	}
	for i := 1; i < len(xi); i++ {
		d := xi[i] - xi[i-1]
		if math.Abs(d-mean) > 1e-8*math.Abs(mean) {
			return fmt.Errorf("%w: step %d is %v, mean %v", ErrUnevenSpacing, i, d, mean)
		}
	}
	return nil
}

// fftFreq returns the sample frequencies for an n-point transform with
// sample spacing d, in unshifted FFT order.
func fftFreq(n int, d float64) []float64 {
	out := make([]float64, n)
	scale := 1 / (d * float64(n))
	half := (n - 1) / 2
	for i := 0; i <= half; i++ {
		out[i] = float64(i) * scale
	}
	for i := half + 1; i < n; i++ {
		out[i] = float64(i-n) * scale
	}
	return out
}

func fftShiftFloat(arr []float64) []float64 {
	n := len(arr)
	pivot := (n + 1) / 2
	out := make([]float64, n)
	copy(out, arr[pivot:])
	copy(out[n-pivot:], arr[:pivot])
	return out
}

func fftShiftComplex(arr []complex128) []complex128 {
	n := len(arr)
	pivot := (n + 1) / 2
	out := make([]complex128, n)
	copy(out, arr[pivot:])
	copy(out[n-pivot:], arr[:pivot])
	return out
}
