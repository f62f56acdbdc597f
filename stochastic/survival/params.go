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

package survival

import (
	"math"

	"github.com/cockroachdb/errors"
)

var ErrInvalidParameter = errors.New("invalid parameter")

// Params holds the natural scale parameters of a distribution. Only the
// fields used by the distribution are set:
//   - Exponential: Rate
//   - Weibull: Shape and Scale
//   - Gompertz: Shape and Rate
type Params struct {
	Rate  float64
	Shape float64
	Scale float64
}

// Transform converts the log scale linear predictor location and the log
// scale ancillary parameter par2 into natural scale parameters of dist.
// The location becomes the rate (exponential, Gompertz) or the scale
// (Weibull); par2 becomes the shape and is ignored for the exponential
// distribution.
func Transform(dist Distribution, location, par2 float64) (Params, error) {
	switch dist {
	case Exponential:
		rate, err := expParam("location", location, false)
		if err != nil {
			return Params{}, err
		}
		return Params{Rate: rate}, nil
	case Weibull:
		shape, err := expParam("par2", par2, false)
		if err != nil {
			return Params{}, err
		}
		scale, err := expParam("location", location, false)
		if err != nil {
			return Params{}, err
		}
		return Params{Shape: shape, Scale: scale}, nil
	case Gompertz:
		// a vanishing shape is the exponential limit of the Gompertz distribution
		shape, err := expParam("par2", par2, true)
		if err != nil {
			return Params{}, err
		}
		rate, err := expParam("location", location, false)
		if err != nil {
			return Params{}, err
		}
		return Params{Shape: shape, Rate: rate}, nil
	}
	return Params{}, errors.Wrapf(ErrUnsupportedDistribution, "%v", dist)
}

// expParam exponentiates a log scale parameter and checks that the result
// is usable as a positive natural scale parameter.
func expParam(name string, v float64, allowZero bool) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrInvalidParameter, "%s %v is not finite", name, v)
	}
	x := math.Exp(v)
	if math.IsInf(x, 1) {
		return 0, errors.Wrapf(ErrInvalidParameter, "exp(%s) overflows for %s=%v", name, name, v)
	}
	if x == 0 && !allowZero {
		return 0, errors.Wrapf(ErrInvalidParameter, "exp(%s) underflows for %s=%v", name, name, v)
	}
	return x, nil
}
