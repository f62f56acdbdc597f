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

//go:generate mockgen -source source.go -destination source_mock.go -package rng

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source is the uniform bit source consumed by all samplers. It matches
// the source type expected by gonum's distuv distributions.
type Source interface {
	Uint64() uint64
	Seed(seed uint64)
}

// NewSource returns a PCG source seeded with seed. A zero seed is replaced
// by the current time.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewSource(seed)
}

// lockedSource serializes access to a source shared between goroutines.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src so that it can be shared by concurrent callers.
func NewLockedSource(src Source) Source {
	return &lockedSource{src: src}
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// Uniform draws one variate from [0,1) using exactly one value of src.
func Uniform(src Source) float64 {
	return distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand()
}
