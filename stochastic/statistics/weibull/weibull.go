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

package weibull

import (
	"math"

	"github.com/jeffPHE/hesim/stochastic/rng"
	"gonum.org/v1/gonum/stat/distuv"
)

// CDF is the cumulative distribution function of the Weibull distribution
// with shape k and scale lambda.
func CDF(k, lambda, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/lambda, k))
}

// Quantile is the inverse cumulative distribution function, i.e.,
// lambda * (-ln(1-p))^(1/k).
func Quantile(k, lambda, p float64) float64 {
	return distuv.Weibull{K: k, Lambda: lambda}.Quantile(p)
}

// Sample draws a single Weibull distributed variate.
func Sample(src rng.Source, k, lambda float64) float64 {
	return distuv.Weibull{K: k, Lambda: lambda, Src: src}.Rand()
}
