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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jeffPHE/hesim/logger"
	"github.com/jeffPHE/hesim/stochastic/rng"
	"github.com/jeffPHE/hesim/stochastic/statistics/exponential"
	"github.com/jeffPHE/hesim/stochastic/statistics/gompertz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gonum.org/v1/gonum/stat"
)

// constSource always yields the same value.
type constSource struct{ v uint64 }

func (c *constSource) Uint64() uint64 { return c.v }
func (c *constSource) Seed(uint64)    {}

func drawMany(t *testing.T, n int, dist string, location, par2 float64) []float64 {
	t.Helper()
	src := rng.NewSource(2024)
	xs := make([]float64, n)
	for i := range xs {
		x, err := DrawSurvivalTime(src, location, par2, dist)
		require.NoError(t, err)
		if x < 0 {
			t.Fatalf("negative survival time %v", x)
		}
		xs[i] = x
	}
	return xs
}

func TestDrawSurvivalTime_ExponentialMean(t *testing.T) {
	xs := drawMany(t, 20000, "exponential", 0, 0)
	assert.InDelta(t, 1.0, stat.Mean(xs, nil), 0.05)
}

func TestDrawSurvivalTime_ExponentialRateFromLocation(t *testing.T) {
	xs := drawMany(t, 20000, "exponential", math.Log(4), 0)
	assert.InEpsilon(t, 0.25, stat.Mean(xs, nil), 0.05)
}

func TestDrawSurvivalTime_WeibullMean(t *testing.T) {
	shape, scale := 2.0, 3.0
	xs := drawMany(t, 20000, "weibull", math.Log(scale), math.Log(shape))
	want := scale * math.Gamma(1+1/shape)
	assert.InEpsilon(t, want, stat.Mean(xs, nil), 0.03)
}

func TestDrawSurvivalTime_GompertzMedian(t *testing.T) {
	shape, rate := 0.5, 2.0
	xs := drawMany(t, 20000, "gompertz", math.Log(rate), math.Log(shape))
	median, err := gompertz.Quantile(0.5, shape, rate)
	require.NoError(t, err)

	below := 0
	for _, x := range xs {
		if x <= median {
			below++
		}
	}
	assert.InDelta(t, 0.5, float64(below)/float64(len(xs)), 0.02)
}

func TestDrawSurvivalTime_GompertzUsesInverseTransform(t *testing.T) {
	bits := uint64(1<<40 + 99)
	ctrl := gomock.NewController(t)
	src := rng.NewMockSource(ctrl)
	src.EXPECT().Uint64().Return(bits).Times(1)

	got, err := DrawSurvivalTime(src, math.Log(2), math.Log(0.5), "gompertz")
	require.NoError(t, err)

	want, err := gompertz.Sample(&constSource{bits}, 0.5, 2)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

func TestDrawSurvivalTime_GompertzVanishingShapeIsExponential(t *testing.T) {
	bits := uint64(1<<40 + 99)
	u := rng.Uniform(&constSource{bits})
	want := exponential.Quantile(1, u)
	for _, par2 := range []float64{-744, -740, -710} {
		got, err := DrawSurvivalTime(&constSource{bits}, 0, par2, "gompertz")
		require.NoError(t, err)
		assert.InEpsilon(t, want, got, 1e-12, "par2=%v", par2)
	}
}

func TestDrawSurvivalTime_UnknownDistributionIsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := rng.NewMockSource(ctrl)

	got, err := DrawSurvivalTime(src, 0, 0, "unknown")
	assert.Equal(t, 0.0, got)
	assert.True(t, errors.Is(err, ErrUnsupportedDistribution))
}

func TestDrawSurvivalTime_InvalidParametersDoNotDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := rng.NewMockSource(ctrl)

	for _, dist := range Distributions() {
		got, err := DrawSurvivalTime(src, math.NaN(), 0, dist.String())
		assert.Equal(t, 0.0, got)
		assert.True(t, errors.Is(err, ErrInvalidParameter), "%v: %v", dist, err)
	}
}

func TestDraw_UnknownEnumValue(t *testing.T) {
	_, err := Draw(rng.NewSource(1), Distribution(9), 0, 0)
	assert.True(t, errors.Is(err, ErrUnsupportedDistribution))
}

func TestSampler_Draw(t *testing.T) {
	log := logger.NewLogger("critical", "TestSampler")
	s := NewSampler(rng.NewSource(5), Weibull, log)
	assert.Equal(t, Weibull, s.Distribution())

	for _i := 0; _i < 100; _i++ {
		x, err := s.Draw(0, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, x, 0.0)
	}

	_, err := s.Draw(math.Inf(-1), 0)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestSampler_NilSourceIsSeeded(t *testing.T) {
	log := logger.NewLogger("critical", "TestSamplerNilSource")
	s := NewSampler(nil, Gompertz, log)
	x, err := s.Draw(0, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, x, 0.0)
}
