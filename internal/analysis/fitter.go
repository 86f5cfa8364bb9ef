package analysis

import (
	"fmt"
	"math"
)

const (
	defaultMaxEvaluations = 10000
	defaultTolerance      = 1e-10

	initialDamping = 1e-3
	minDamping     = 1e-12
	maxDamping     = 1e12
)

// FitConfig bounds the nonlinear least-squares search.
type FitConfig struct {
	// MaxEvaluations caps how many times the model function may be
	// evaluated over the full series before the fit is declared
	// non-convergent. A non-converging fit is bounded by this budget,
	// not by wall clock.
	MaxEvaluations int
	// Tolerance is the relative change in the sum of squared residuals
	// below which the search is considered converged.
	Tolerance float64
}

// FitResult is the outcome of fitting one model to one method's series.
// Created by the Fitter, scored afterwards, never mutated by consumers.
// A failed fit carries Err and empty parameters; failures are per
// (method, model) pair and never abort sibling attempts.
type FitResult struct {
	Model      string    `json:"model"`
	Label      string    `json:"label"`
	ParamNames []string  `json:"param_names,omitempty"`
	Params     []float64 `json:"params,omitempty"`
	// Predicted holds the model's predictions at the observed sizes,
	// in series order.
	Predicted []float64 `json:"predicted,omitempty"`
	RSquared  float64   `json:"r_squared"`
	RMSE      float64   `json:"rmse"`
	Err       *FitError `json:"error,omitempty"`
}

// Failed reports whether the fit attempt failed.
func (r FitResult) Failed() bool {
	return r.Err != nil
}

// ParamMap returns the fitted parameters keyed by parameter name.
func (r FitResult) ParamMap() map[string]float64 {
	out := make(map[string]float64, len(r.Params))
	for i, name := range r.ParamNames {
		if i < len(r.Params) {
			out[name] = r.Params[i]
		}
	}
	return out
}

// Fitter searches for model parameters minimizing the sum of squared
// residuals between predicted and observed times, using damped
// Gauss-Newton iteration (Levenberg-Marquardt) with a forward-difference
// Jacobian. The normal equations are solved by Gaussian elimination with
// partial pivoting.
//
// Every search starts from an all-ones parameter vector. That keeps runs
// reproducible but is a known limitation: a poorly scaled series can
// steer the search into a local optimum or out of the budget entirely.
type Fitter struct {
	maxEval int
	tol     float64
}

// NewFitter creates a Fitter. Zero config fields fall back to defaults.
func NewFitter(cfg FitConfig) *Fitter {
	maxEval := cfg.MaxEvaluations
	if maxEval <= 0 {
		maxEval = defaultMaxEvaluations
	}
	tol := cfg.Tolerance
	if tol <= 0 {
		tol = defaultTolerance
	}
	return &Fitter{maxEval: maxEval, tol: tol}
}

// Fit fits one catalog model to one method's aggregated series.
// The series must carry times in milliseconds; fitting in a mixed or
// larger unit would ill-condition the parameter scales.
func (f *Fitter) Fit(series MethodSeries, spec ModelSpec) FitResult {
	res := FitResult{
		Model:      spec.Name,
		Label:      spec.Label,
		ParamNames: spec.ParamNames,
	}

	sizes := series.Sizes()
	times := series.MeanTimes()
	nParams := spec.ParamCount()

	if len(sizes) < nParams {
		res.Err = &FitError{
			Model:  spec.Name,
			Reason: FailureDegenerate,
			Detail: fmt.Sprintf("%d points cannot constrain %d parameters", len(sizes), nParams),
		}
		return res
	}
	for i := range sizes {
		if !isFinite(sizes[i]) || !isFinite(times[i]) {
			res.Err = &FitError{
				Model:  spec.Name,
				Reason: FailureDegenerate,
				Detail: fmt.Sprintf("non-finite value at size index %d", i),
			}
			return res
		}
	}

	params, fitErr := f.search(spec, sizes, times)
	if fitErr != nil {
		res.Err = fitErr
		return res
	}

	res.Params = params
	res.Predicted = make([]float64, len(sizes))
	for i, n := range sizes {
		res.Predicted[i] = spec.Evaluate(n, params)
	}
	return res
}

// search runs the damped iteration. One "evaluation" is one pass of the
// model function over the whole series, matching how the budget is meant
// to bound cost.
func (f *Fitter) search(spec ModelSpec, sizes, times []float64) ([]float64, *FitError) {
	nParams := spec.ParamCount()

	params := make([]float64, nParams)
	for i := range params {
		params[i] = 1.0
	}

	evals := 0
	ssr := func(p []float64) float64 {
		evals++
		var sum float64
		for i, n := range sizes {
			r := times[i] - spec.Evaluate(n, p)
			sum += r * r
		}
		return sum
	}

	current := ssr(params)
	if !isFinite(current) {
		return nil, &FitError{Model: spec.Name, Reason: FailureDegenerate, Detail: "non-finite residuals at initial guess"}
	}

	lambda := initialDamping

	for evals < f.maxEval {
		jac, residuals := f.linearize(spec, sizes, times, params, &evals)

		// Normal equations: (JᵀJ + λ·diag(JᵀJ)) δ = Jᵀr
		jtj := make([][]float64, nParams)
		jtr := make([]float64, nParams)
		for k := 0; k < nParams; k++ {
			jtj[k] = make([]float64, nParams)
			for l := 0; l < nParams; l++ {
				var sum float64
				for i := range sizes {
					sum += jac[i][k] * jac[i][l]
				}
				jtj[k][l] = sum
			}
			var sum float64
			for i := range sizes {
				sum += jac[i][k] * residuals[i]
			}
			jtr[k] = sum
		}

		stepped := false
		for evals < f.maxEval {
			damped := make([][]float64, nParams)
			rhs := make([]float64, nParams)
			for k := 0; k < nParams; k++ {
				damped[k] = make([]float64, nParams)
				copy(damped[k], jtj[k])
				d := jtj[k][k]
				if d == 0 {
					d = 1
				}
				damped[k][k] += lambda * d
				rhs[k] = jtr[k]
			}

			delta, ok := solveLinearSystem(damped, rhs)
			if !ok {
				return nil, &FitError{Model: spec.Name, Reason: FailureDegenerate, Detail: "singular normal equations"}
			}

			trial := make([]float64, nParams)
			for k := range params {
				trial[k] = params[k] + delta[k]
			}
			trialSSR := ssr(trial)

			if isFinite(trialSSR) && trialSSR <= current {
				converged := current-trialSSR <= f.tol*(trialSSR+f.tol)
				params = trial
				current = trialSSR
				lambda = math.Max(lambda*0.1, minDamping)
				stepped = true
				if converged {
					return params, nil
				}
				break
			}

			lambda *= 10
			if lambda > maxDamping {
				// The surface rejects every step length; treat an
				// already-tiny residual as converged rather than failed.
				if current <= f.tol {
					return params, nil
				}
				return nil, &FitError{Model: spec.Name, Reason: FailureNonConvergence, Detail: "damping limit reached"}
			}
		}

		if !stepped && evals >= f.maxEval {
			break
		}
	}

	return nil, &FitError{
		Model:  spec.Name,
		Reason: FailureNonConvergence,
		Detail: fmt.Sprintf("evaluation budget of %d exhausted", f.maxEval),
	}
}

// linearize builds the forward-difference Jacobian of the model and the
// residual vector at the current parameters.
func (f *Fitter) linearize(spec ModelSpec, sizes, times, params []float64, evals *int) ([][]float64, []float64) {
	nParams := len(params)

	base := make([]float64, len(sizes))
	*evals++
	for i, n := range sizes {
		base[i] = spec.Evaluate(n, params)
	}

	residuals := make([]float64, len(sizes))
	for i := range sizes {
		residuals[i] = times[i] - base[i]
	}

	jac := make([][]float64, len(sizes))
	for i := range jac {
		jac[i] = make([]float64, nParams)
	}

	perturbed := make([]float64, nParams)
	for k := 0; k < nParams; k++ {
		copy(perturbed, params)
		h := 1e-8 * math.Max(1, math.Abs(params[k]))
		perturbed[k] += h
		*evals++
		for i, n := range sizes {
			jac[i][k] = (spec.Evaluate(n, perturbed) - base[i]) / h
		}
	}

	return jac, residuals
}

// solveLinearSystem solves Ax = b in place using Gaussian elimination
// with partial pivoting. Returns false for a singular system.
func solveLinearSystem(a [][]float64, b []float64) ([]float64, bool) {
	n := len(b)
	if n == 0 || len(a) != n {
		return nil, false
	}

	for k := 0; k < n; k++ {
		maxIdx := k
		maxVal := math.Abs(a[k][k])
		for i := k + 1; i < n; i++ {
			if math.Abs(a[i][k]) > maxVal {
				maxIdx = i
				maxVal = math.Abs(a[i][k])
			}
		}
		if maxIdx != k {
			a[k], a[maxIdx] = a[maxIdx], a[k]
			b[k], b[maxIdx] = b[maxIdx], b[k]
		}

		if math.Abs(a[k][k]) < 1e-300 {
			return nil, false
		}

		for i := k + 1; i < n; i++ {
			factor := a[i][k] / a[k][k]
			for j := k; j < n; j++ {
				a[i][j] -= factor * a[k][j]
			}
			b[i] -= factor * b[k]
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		x[i] = b[i]
		for j := i + 1; j < n; j++ {
			x[i] -= a[i][j] * x[j]
		}
		x[i] /= a[i][i]
	}

	for i := range x {
		if !isFinite(x[i]) {
			return nil, false
		}
	}
	return x, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
