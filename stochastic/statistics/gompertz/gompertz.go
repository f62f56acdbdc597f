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

// Package gompertz implements the Gompertz distribution with shape a and
// rate b, whose hazard is b*exp(a*t). A zero shape reduces the distribution
// to the exponential distribution with the same rate. A negative shape
// makes the distribution defective: a share exp(b/a) of the mass never
// fails, and the quantile function reports Unbounded.
package gompertz

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/jeffPHE/hesim/stochastic/rng"
	"github.com/jeffPHE/hesim/stochastic/statistics/exponential"
)

var (
	ErrInvalidProbability = errors.New("probability must be in [0,1]")
	ErrInvalidShape       = errors.New("shape must be a finite number")
	ErrInvalidRate        = errors.New("rate must be a positive finite number")
)

// Unbounded is the quantile reported when no finite time reaches the
// requested probability.
var Unbounded = math.Inf(1)

// smallestNormal is the smallest positive normal float64. Dividing by a
// smaller shape amplifies rounding errors of subnormal products.
const smallestNormal = 0x1p-1022

// IsUnbounded reports whether q is the Unbounded quantile.
func IsUnbounded(q float64) bool {
	return math.IsInf(q, 1)
}

// CheckParams validates the shape and the rate of the distribution.
func CheckParams(shape, rate float64) error {
	if math.IsNaN(shape) || math.IsInf(shape, 0) {
		return errors.Wrapf(ErrInvalidShape, "shape %v", shape)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return errors.Wrapf(ErrInvalidRate, "rate %v", rate)
	}
	return nil
}

// Quantile is the inverse cumulative distribution function.
//
// For shape > 0 the quantile is ln(1 - shape*ln(1-p)/rate) / shape, for a
// zero or subnormal shape it is the exponential quantile, and for shape < 0
// it is Unbounded. Quantile(1, ...) is +Inf.
func Quantile(p, shape, rate float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, errors.Wrapf(ErrInvalidProbability, "p %v", p)
	}
	if err := CheckParams(shape, rate); err != nil {
		return 0, err
	}
	switch {
	case shape < 0:
		return Unbounded, nil
	case p == 1:
		return math.Inf(1), nil
	case shape < smallestNormal:
		// zero and subnormal shapes are the exponential limit
		return exponential.Quantile(rate, p), nil
	}
	// ln(1+z)/shape written as h/rate * ln(1+z)/z, with h = -ln(1-p)
	h := -math.Log1p(-p)
	z := shape * h / rate
	switch {
	case z == 0:
		return h / rate, nil
	case math.IsInf(z, 1):
		return (math.Log(shape) + math.Log(h) - math.Log(rate)) / shape, nil
	}
	return h / rate * math.Log1p(z) / z, nil
}

// CDF is the cumulative distribution function. For a negative shape the
// CDF approaches 1-exp(rate/shape) instead of one.
func CDF(x, shape, rate float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(cumHazard(x, shape, rate))
}

// Survival is the survival function 1-CDF.
func Survival(x, shape, rate float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Exp(cumHazard(x, shape, rate))
}

// Hazard is the instantaneous failure rate rate*exp(shape*x).
func Hazard(x, shape, rate float64) float64 {
	if x < 0 {
		return 0
	}
	return rate * math.Exp(shape*x)
}

// PDF is the probability density function.
func PDF(x, shape, rate float64) float64 {
	if x < 0 {
		return 0
	}
	return Hazard(x, shape, rate) * Survival(x, shape, rate)
}

// cumHazard returns the negated cumulative hazard at x.
func cumHazard(x, shape, rate float64) float64 {
	if math.Abs(shape) < smallestNormal {
		return -rate * x
	}
	return -rate / shape * math.Expm1(shape*x)
}

// Sample draws a Gompertz variate by inverse transform sampling. Exactly
// one uniform variate is taken from src; invalid parameters are reported
// without touching src.
func Sample(src rng.Source, shape, rate float64) (float64, error) {
	// checked here as well as in Quantile so that invalid parameters never
	// consume a value of src
	if err := CheckParams(shape, rate); err != nil {
		return 0, err
	}
	return Quantile(rng.Uniform(src), shape, rate)
}
