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

package rng

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/rand"
)

func TestSource_NewSourceIsDeterministic(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for _i := 0; _i < 100; _i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestSource_ZeroSeedUsesClock(t *testing.T) {
	src := NewSource(0)
	assert.NotNil(t, src)
	// a clock seeded source must still produce values
	src.Uint64()
}

// constSource always yields the same value.
type constSource struct{ v uint64 }

func (c *constSource) Uint64() uint64 { return c.v }
func (c *constSource) Seed(uint64)    {}

func TestUniform_ConsumesOneValue(t *testing.T) {
	tests := []struct {
		name string
		bits uint64
	}{
		{"zero", 0},
		{"low", 1 << 20},
		{"mid", 1<<40 + 12345},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			src := NewMockSource(ctrl)
			src.EXPECT().Uint64().Return(test.bits).Times(1)

			want := rand.New(&constSource{test.bits}).Float64()
			assert.Equal(t, want, Uniform(src))
		})
	}
}

func TestUniform_ZeroBitsGiveZero(t *testing.T) {
	assert.Equal(t, 0.0, Uniform(&constSource{0}))
}

func TestUniform_StaysInUnitInterval(t *testing.T) {
	src := NewSource(7)
	for _i := 0; _i < 10000; _i++ {
		u := Uniform(src)
		assert.GreaterOrEqual(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}
}

func TestLockedSource_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := NewMockSource(ctrl)
	inner.EXPECT().Seed(uint64(3))
	inner.EXPECT().Uint64().Return(uint64(11))

	src := NewLockedSource(inner)
	src.Seed(3)
	assert.Equal(t, uint64(11), src.Uint64())
}

func TestLockedSource_ConcurrentUse(t *testing.T) {
	src := NewLockedSource(NewSource(1))
	var wg sync.WaitGroup
	for _i := 0; _i < 8; _i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _i := 0; _i < 1000; _i++ {
				Uniform(src)
			}
		}()
	}
	wg.Wait()
}
