package analysis

import "math"

// RSquared computes the coefficient of determination of predicted against
// observed values: 1 - SSres/SStot.
//
// When every observed value is identical SStot is zero and R² is defined
// as 0 by convention rather than dividing by zero. That makes a constant
// series score "no variance explained" for every model, which is the
// intended behavior, not an error.
func RSquared(observed, predicted []float64) (float64, error) {
	if len(observed) != len(predicted) || len(observed) == 0 {
		return 0, ErrDimensionMismatch
	}

	mean := 0.0
	for _, o := range observed {
		mean += o
	}
	mean /= float64(len(observed))

	var ssRes, ssTot float64
	for i, o := range observed {
		r := o - predicted[i]
		ssRes += r * r
		d := o - mean
		ssTot += d * d
	}

	if ssTot == 0 {
		return 0, nil
	}
	return 1 - ssRes/ssTot, nil
}

// RMSE computes the root-mean-square error between observed and predicted
// values, in the same unit as the inputs.
func RMSE(observed, predicted []float64) (float64, error) {
	if len(observed) != len(predicted) || len(observed) == 0 {
		return 0, ErrDimensionMismatch
	}

	var ss float64
	for i, o := range observed {
		r := o - predicted[i]
		ss += r * r
	}
	return math.Sqrt(ss / float64(len(observed))), nil
}
