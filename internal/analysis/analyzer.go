// Package analysis characterizes the empirical time complexity of
// benchmarked methods. It aggregates repeated (size, time) measurements,
// fits a fixed catalog of growth models to each method's series by
// nonlinear least squares, scores every fit by coefficient of
// determination and RMSE, and selects the best-explaining model per
// method with a deterministic tie-break.
//
// The package is purely in-memory: observations come in as a slice,
// results leave as a Result value. Reading CSV files, drawing charts and
// formatting reports belong to the surrounding packages.
package analysis

import (
	"log/slog"
	"time"
)

const defaultResamplePoints = 100

// Config configures an Analyzer. Constructed once per run, never mutated.
type Config struct {
	Fit FitConfig
	// ResamplePoints is the number of samples per fitted curve handed to
	// the plotting side.
	ResamplePoints int
}

// Analyzer runs the full pipeline: aggregate, fit, score, select,
// assemble. Methods are analyzed independently and sequentially; nothing
// is shared between them, so a failure in one method's fits never leaks
// into another's.
type Analyzer struct {
	catalog        []ModelSpec
	fitter         *Fitter
	resamplePoints int
	logger         *slog.Logger
}

// New creates an Analyzer over the fixed model catalog.
func New(cfg Config, logger *slog.Logger) *Analyzer {
	points := cfg.ResamplePoints
	if points <= 0 {
		points = defaultResamplePoints
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		catalog:        Catalog(),
		fitter:         NewFitter(cfg.Fit),
		resamplePoints: points,
		logger:         logger,
	}
}

// Run analyzes an observation collection and returns one MethodAnalysis
// per method. It fails only on invalid input; per-model fit failures are
// recorded in the result, and a method where every model failed carries
// an explicit no-selection marker.
func (a *Analyzer) Run(observations []Observation) (*Result, error) {
	series, err := Aggregate(observations)
	if err != nil {
		return nil, err
	}

	result := &Result{
		GeneratedAt: time.Now().UTC(),
		TimeUnit:    "ms",
		Methods:     make([]MethodAnalysis, 0, len(series)),
	}

	for _, s := range series {
		result.Methods = append(result.Methods, a.analyzeMethod(s))
	}
	return result, nil
}

func (a *Analyzer) analyzeMethod(series MethodSeries) MethodAnalysis {
	observed := series.MeanTimes()
	minSize := float64(series.Points[0].Size)
	maxSize := float64(series.Points[len(series.Points)-1].Size)

	fits := make([]FitResult, 0, len(a.catalog))
	curves := make(map[string][]CurvePoint, len(a.catalog))

	for _, spec := range a.catalog {
		fit := a.fitter.Fit(series, spec)
		if !fit.Failed() {
			fit.RSquared, _ = RSquared(observed, fit.Predicted)
			fit.RMSE, _ = RMSE(observed, fit.Predicted)
			curves[spec.Name] = ResampleCurve(spec, fit.Params, minSize, maxSize, a.resamplePoints)
		} else {
			a.logger.Debug("fit failed",
				"method", series.Method,
				"model", spec.Name,
				"reason", string(fit.Err.Reason),
				"detail", fit.Err.Detail,
			)
		}
		fits = append(fits, fit)
	}

	ma := assembleMethod(series, fits, curves)
	if ma.HasSelection {
		a.logger.Info("method analyzed",
			"method", series.Method,
			"best_model", ma.SelectedLbl,
			"r_squared", ma.SelectedR2,
		)
	} else {
		a.logger.Warn("no model could be fitted", "method", series.Method)
	}
	return ma
}
