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

// Package survival draws random survival times from parametric hazard
// models whose parameters are given on the log scale, as produced by the
// linear predictor of a regression model.
package survival

import (
	"github.com/cockroachdb/errors"
	"github.com/jeffPHE/hesim/stochastic/rng"
	"github.com/jeffPHE/hesim/stochastic/statistics/exponential"
	"github.com/jeffPHE/hesim/stochastic/statistics/gompertz"
	"github.com/jeffPHE/hesim/stochastic/statistics/weibull"
	"github.com/op/go-logging"
)

// Draw returns one survival time of dist. Exactly one variate of dist is
// drawn from src; the parameters are checked before src is used.
func Draw(src rng.Source, dist Distribution, location, par2 float64) (float64, error) {
	p, err := Transform(dist, location, par2)
	if err != nil {
		return 0, err
	}
	switch dist {
	case Exponential:
		return exponential.Sample(src, p.Rate), nil
	case Weibull:
		return weibull.Sample(src, p.Shape, p.Scale), nil
	case Gompertz:
		return gompertz.Sample(src, p.Shape, p.Rate)
	}
	return 0, errors.Wrapf(ErrUnsupportedDistribution, "%v", dist)
}

// DrawSurvivalTime returns one survival time of the distribution named by
// dist. An unknown name yields 0 together with ErrUnsupportedDistribution.
func DrawSurvivalTime(src rng.Source, location, par2 float64, dist string) (float64, error) {
	d, err := ParseDistribution(dist)
	if err != nil {
		return 0, err
	}
	return Draw(src, d, location, par2)
}

// Sampler draws survival times of a fixed distribution from its source.
type Sampler struct {
	src  rng.Source
	dist Distribution
	log  *logging.Logger
}

// NewSampler creates a Sampler for dist. A nil source is replaced by a
// clock seeded one.
func NewSampler(src rng.Source, dist Distribution, log *logging.Logger) *Sampler {
	if src == nil {
		src = rng.NewSource(0)
	}
	return &Sampler{
		src:  src,
		dist: dist,
		log:  log,
	}
}

// Distribution returns the distribution of the sampler.
func (s *Sampler) Distribution() Distribution {
	return s.dist
}

// Draw returns one survival time for the log scale parameters.
func (s *Sampler) Draw(location, par2 float64) (float64, error) {
	t, err := Draw(s.src, s.dist, location, par2)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot draw %v survival time", s.dist)
	}
	s.log.Debugf("%v survival time %v (location=%v, par2=%v)", s.dist, t, location, par2)
	return t, nil
}
