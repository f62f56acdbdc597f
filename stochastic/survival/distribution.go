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
	"strings"

	"github.com/cockroachdb/errors"
)

// Distribution enumerates the parametric hazard models survival times can
// be drawn from.
type Distribution byte

const (
	Exponential Distribution = iota
	Weibull
	Gompertz
)

var ErrUnsupportedDistribution = errors.New("unsupported distribution")

// Distributions lists all supported distributions.
func Distributions() []Distribution {
	return []Distribution{Exponential, Weibull, Gompertz}
}

func (d Distribution) String() string {
	switch d {
	case Exponential:
		return "exponential"
	case Weibull:
		return "weibull"
	case Gompertz:
		return "gompertz"
	}
	return "unknown"
}

// ParseDistribution maps a distribution name to its Distribution. Names
// are matched case-insensitively.
func ParseDistribution(name string) (Distribution, error) {
	for _, d := range Distributions() {
		if strings.EqualFold(strings.TrimSpace(name), d.String()) {
			return d, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedDistribution, "%q", name)
}
