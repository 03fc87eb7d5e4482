package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrNoSamples is returned when a summary is requested over zero samples.
var ErrNoSamples = errors.New("no samples")

// Summarize returns the mean and population standard deviation of the
// samples, each rounded to two decimal places.
func Summarize(samples []float64) (mean, std float64, err error) {
	if len(samples) == 0 {
		return 0, 0, ErrNoSamples
	}
	mean = stat.Mean(samples, nil)
	if len(samples) > 1 {
		std = stat.PopStdDev(samples, nil)
	}
	return Round2(mean), Round2(std), nil
}

// Round2 rounds to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
