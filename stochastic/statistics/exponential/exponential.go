// Copyright 2026 hesim authors
// This file is part of hesim, survival-time simulation tools
//
// hesim is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// hesim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with hesim. If not, see <http://www.gnu.org/licenses/>.

package exponential

import (
	"math"

	"github.com/jeffPHE/hesim/stochastic/rng"
	"gonum.org/v1/gonum/stat/distuv"
)

// Package for the exponential distribution parameterized by its rate.
// The mean of the distribution is 1/rate.

// CDF is the cumulative distribution function of the exponential distribution.
func CDF(rate float64, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-rate * x)
}

// Quantile is the inverse cumulative distribution function, i.e., -ln(1-p)/rate.
func Quantile(rate float64, p float64) float64 {
	return distuv.Exponential{Rate: rate}.Quantile(p)
}

// Sample draws a single exponentially distributed variate with mean 1/rate.
func Sample(src rng.Source, rate float64) float64 {
	return distuv.Exponential{Rate: rate, Src: src}.Rand()
}
