/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package collection

import (
	"github.com/gorundebug/dynarray/config"
	"math"
)

const (
	DefaultInitialCapacity = 16
	DefaultGrowthFactor    = 2.0
	MaxGrowthFactor        = config.MaxGrowthFactor

	maxCapacity = math.MaxInt / 2
)

type GrowthPolicy struct {
	InitialCapacity int
	Factor          float64
}

func DefaultGrowthPolicy() GrowthPolicy {
	return GrowthPolicy{
		InitialCapacity: DefaultInitialCapacity,
		Factor:          DefaultGrowthFactor,
	}
}

func (p GrowthPolicy) normalize() GrowthPolicy {
	if p.InitialCapacity < 0 {
		p.InitialCapacity = DefaultInitialCapacity
	}
	if !(p.Factor > 1) {
		p.Factor = DefaultGrowthFactor
	}
	if p.Factor > MaxGrowthFactor {
		p.Factor = MaxGrowthFactor
	}
	return p
}

// NextCapacity returns the capacity the buffer is reallocated to when it has
// to hold needed elements. The result is never below needed and stops
// growing multiplicatively at math.MaxInt/2.
func (p GrowthPolicy) NextCapacity(current int, needed int) int {
	if needed <= current {
		return current
	}
	p = p.normalize()
	capacity := current
	if capacity < p.InitialCapacity {
		capacity = p.InitialCapacity
	}
	if capacity == 0 {
		capacity = 1
	}
	for capacity < needed {
		next := math.Ceil(float64(capacity) * p.Factor)
		if next >= maxCapacity {
			return max(needed, maxCapacity)
		}
		capacity = max(int(next), capacity+1)
	}
	return capacity
}
