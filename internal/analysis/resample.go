package analysis

// ResampleCurve evaluates a fitted model over count evenly spaced sizes
// between minSize and maxSize inclusive, producing the dense curve the
// plotting side draws between the observed points.
func ResampleCurve(spec ModelSpec, params []float64, minSize, maxSize float64, count int) []CurvePoint {
	if count < 2 {
		count = 2
	}
	if maxSize < minSize {
		minSize, maxSize = maxSize, minSize
	}

	step := (maxSize - minSize) / float64(count-1)
	points := make([]CurvePoint, count)
	for i := 0; i < count; i++ {
		n := minSize + float64(i)*step
		points[i] = CurvePoint{Size: n, TimeMS: spec.Evaluate(n, params)}
	}
	return points
}
