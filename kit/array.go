// Package kit provides array interaction tools shared by the data package
// and downstream processing code.
package kit

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Common errors
var (
	ErrLengthMismatch = errors.New("input arrays differ in length")
	ErrUnevenSpacing  = errors.New("coordinates are not evenly spaced")
)

// Pair holds the indices of two elements of one array.
type Pair [2]int

// ClosestPair finds the pairs of indices corresponding to the closest
// elements of arr. If multiple pairs are equally close, all are returned.
func ClosestPair(arr []float64) []Pair {
	if len(arr) < 2 {
		return nil
	}
	minDist := math.Inf(1)
	var out []Pair
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			dist := math.Abs(arr[i] - arr[j])
			switch {
			case dist < minDist:
				minDist = dist
				out = out[:0]
				out = append(out, Pair{i, j})
			case dist == minDist:
				out = append(out, Pair{i, j})
			}
		}
	}
	return out
}

// ClosestDistance returns the smallest absolute difference between any two
// elements of arr.
func ClosestDistance(arr []float64) float64 {
	pairs := ClosestPair(arr)
	if len(pairs) == 0 {
		return 0
	}
	p := pairs[0]
	return math.Abs(arr[p[0]] - arr[p[1]])
}

// Diff takes the numerical derivative of yi with respect to xi.
// The derivative is evaluated at segment midpoints and mapped back onto the
// original coordinates by linear interpolation, so the output has the same
// length as the inputs. order repeats the differentiation.
func Diff(xi, yi []float64, order int) ([]float64, error) {
	if len(xi) != len(yi) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xi), len(yi))
	}
	if len(xi) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points", ErrLengthMismatch)
	}

	// Work on sorted copies; undo the permutation at the end.
	idx := make([]int, len(xi))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xi[idx[a]] < xi[idx[b]] })

	x := make([]float64, len(xi))
	y := make([]float64, len(yi))
	for i, j := range idx {
		x[i] = xi[j]
		y[i] = yi[j]
	}

	mid := make([]float64, len(x)-1)
	for i := range mid {
		mid[i] = (x[i] + x[i+1]) / 2
	}

	for o := 0; o < order; o++ {
		d := make([]float64, len(x)-1)
		for i := range d {
			d[i] = (y[i+1] - y[i]) / (x[i+1] - x[i])
		}
		y = Interp(x, mid, d)
	}

	out := make([]float64, len(y))
	for i, j := range idx {
		out[j] = y[i]
	}
	return out, nil
}

// Interp linearly interpolates (xp, fp) at the points x.
// xp must be increasing. Values outside xp's range clamp to the edge values.
func Interp(x, xp, fp []float64) []float64 {
	out := make([]float64, len(x))
	for i, xv := range x {
		out[i] = interpAt(xv, xp, fp)
	}
	return out
}

func interpAt(x float64, xp, fp []float64) float64 {
	if len(xp) == 0 {
		return math.NaN()
	}
	if x <= xp[0] {
		return fp[0]
	}
	if x >= xp[len(xp)-1] {
		return fp[len(fp)-1]
	}
	j := sort.SearchFloat64s(xp, x)
	// xp[j-1] < x <= xp[j]
	t := (x - xp[j-1]) / (xp[j] - xp[j-1])
	return fp[j-1] + t*(fp[j]-fp[j-1])
}

// JointShape returns the element-wise maximum of the given shapes.
// All shapes must have the same rank.
func JointShape(shapes ...[]int) []int {
	if len(shapes) == 0 {
		return nil
	}
	out := make([]int, len(shapes[0]))
	copy(out, shapes[0])
	for _, s := range shapes[1:] {
		for i := range out {
			if i < len(s) && s[i] > out[i] {
				out[i] = s[i]
			}
		}
	}
	return out
}

// RemoveNaNs1D removes, from every array, the indices at which any array
// holds NaN. All arrays must have the same length.
func RemoveNaNs1D(arrs ...[]float64) ([][]float64, error) {
	if len(arrs) == 0 {
		return nil, nil
	}
	n := len(arrs[0])
	for _, arr := range arrs[1:] {
		if len(arr) != n {
			return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(arr))
		}
	}

	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}
	for _, arr := range arrs {
		for i, v := range arr {
			if math.IsNaN(v) {
				keep[i] = false
			}
		}
	}

	out := make([][]float64, len(arrs))
	for k, arr := range arrs {
		kept := make([]float64, 0, n)
		for i, v := range arr {
			if keep[i] {
				kept = append(kept, v)
			}
		}
		out[k] = kept
	}
	return out, nil
}

// ShareNaNs returns copies of the input arrays where an index that is NaN in
// any array is NaN in all of them.
func ShareNaNs(arrs ...[]float64) ([][]float64, error) {
	if len(arrs) == 0 {
		return nil, nil
	}
	n := len(arrs[0])
	for _, arr := range arrs[1:] {
		if len(arr) != n {
			return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(arr))
		}
	}

	nan := make([]bool, n)
	for _, arr := range arrs {
		for i, v := range arr {
			if math.IsNaN(v) {
				nan[i] = true
			}
		}
	}

	out := make([][]float64, len(arrs))
	for k, arr := range arrs {
		c := make([]float64, n)
		copy(c, arr)
		for i := range c {
			if nan[i] {
				c[i] = math.NaN()
			}
		}
		out[k] = c
	}
	return out, nil
}

// Smooth1D smooths data by a centered running average of half-width n,
// returning a new slice. The n edge points on either side are left unchanged.
func Smooth1D(arr []float64, n int) []float64 {
	out := make([]float64, len(arr))
	copy(out, arr)
	if n <= 0 {
		return out
	}
	for i := n; i < len(arr)-n; i++ {
		sum := 0.0
		for j := i - n; j < i+n; j++ {
			sum += arr[j]
		}
		out[i] = sum / float64(2*n)
	}
	return out
}

// Unique returns the sorted unique elements of arr within tolerance.
// Clustered values are replaced by their mean.
func Unique(arr []float64, tolerance float64) []float64 {
	if len(arr) == 0 {
		return nil
	}
	sorted := make([]float64, len(arr))
	copy(sorted, arr)
	sort.Float64s(sorted)

	var out []float64
	i := 0
	for i < len(sorted) {
		j := i + 1
		sum := sorted[i]
		for j < len(sorted) && math.Abs(sorted[j]-sorted[i]) < tolerance {
			sum += sorted[j]
			j++
		}
		out = append(out, sum/float64(j-i))
		i = j
	}
	return out
}

// Magnitude returns the element-wise magnitude of a complex spectrum.
func Magnitude(spectrum []complex128) []float64 {
	re := make([]float64, len(spectrum))
	im := make([]float64, len(spectrum))
	for i, c := range spectrum {
		re[i] = real(c)
		im[i] = imag(c)
	}
	out := make([]float64, len(spectrum))
	vecmath.Magnitude(out, re, im)
	return out
}
