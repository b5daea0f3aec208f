/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

// Package collection implements a generic resizable array with checked
// indexed access and a bracketed string rendering.
package collection

import (
	"fmt"
	"github.com/emirpasic/gods/containers"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"strings"
)

var _ containers.Container = (*Collection[int])(nil)
var _ fmt.Stringer = Collection[int]{}

// Observer is notified about buffer reallocations and count changes.
type Observer interface {
	Grown(from int, to int)
	Changed(count int, capacity int)
}

type nopObserver struct{}

func (nopObserver) Grown(int, int)   {}
func (nopObserver) Changed(int, int) {}

type Settings struct {
	Policy   GrowthPolicy
	Logger   log.FieldLogger
	Observer Observer
}

func DefaultSettings() Settings {
	return Settings{
		Policy:   DefaultGrowthPolicy(),
		Logger:   log.StandardLogger(),
		Observer: nopObserver{},
	}
}

// Collection is not safe for concurrent use.
type Collection[T any] struct {
	items    []T
	count    int
	policy   GrowthPolicy
	logger   log.FieldLogger
	observer Observer
}

func MakeCollection[T any](items ...T) *Collection[T] {
	return MakeCollectionWithSettings(DefaultSettings(), items...)
}

func MakeCollectionWithSettings[T any](settings Settings, items ...T) *Collection[T] {
	if settings.Logger == nil {
		settings.Logger = log.StandardLogger()
	}
	if settings.Observer == nil {
		settings.Observer = nopObserver{}
	}
	policy := settings.Policy.normalize()
	capacity := policy.InitialCapacity
	if capacity < len(items) {
		capacity = len(items)
	}
	c := &Collection[T]{
		items:    make([]T, capacity),
		count:    len(items),
		policy:   policy,
		logger:   settings.Logger,
		observer: settings.Observer,
	}
	copy(c.items, items)
	c.observer.Changed(c.count, len(c.items))
	return c
}

func (c *Collection[T]) Count() int {
	return c.count
}

func (c *Collection[T]) Capacity() int {
	return len(c.items)
}

func (c *Collection[T]) GrowthPolicy() GrowthPolicy {
	return c.policy
}

// SetGrowthPolicy affects future reallocations only.
func (c *Collection[T]) SetGrowthPolicy(policy GrowthPolicy) {
	c.policy = policy.normalize()
}

func (c *Collection[T]) Get(index int) (T, error) {
	if index < 0 || index >= c.count {
		var t T
		return t, outOfRange("get", index, c.count)
	}
	return c.items[index], nil
}

func (c *Collection[T]) Set(index int, value T) error {
	if index < 0 || index >= c.count {
		return outOfRange("set", index, c.count)
	}
	c.items[index] = value
	return nil
}

func (c *Collection[T]) Add(item T) {
	c.ensureCapacity(c.count + 1)
	c.items[c.count] = item
	c.count++
	c.observer.Changed(c.count, len(c.items))
}

// AddRange appends items after the existing elements with at most one
// reallocation.
func (c *Collection[T]) AddRange(items ...T) {
	if len(items) == 0 {
		return
	}
	c.ensureCapacity(c.count + len(items))
	copy(c.items[c.count:], items)
	c.count += len(items)
	c.observer.Changed(c.count, len(c.items))
}

// InsertAt accepts index == Count() as an insert at the end.
func (c *Collection[T]) InsertAt(index int, item T) error {
	if index < 0 || index > c.count {
		return outOfRange("insertAt", index, c.count)
	}
	c.ensureCapacity(c.count + 1)
	copy(c.items[index+1:c.count+1], c.items[index:c.count])
	c.items[index] = item
	c.count++
	c.observer.Changed(c.count, len(c.items))
	return nil
}

// RemoveAt never reduces the capacity.
func (c *Collection[T]) RemoveAt(index int) error {
	if index < 0 || index >= c.count {
		return outOfRange("removeAt", index, c.count)
	}
	copy(c.items[index:c.count-1], c.items[index+1:c.count])
	c.count--
	var zero T
	c.items[c.count] = zero
	c.observer.Changed(c.count, len(c.items))
	return nil
}

func (c *Collection[T]) Exchange(i int, j int) error {
	if i < 0 || i >= c.count {
		return outOfRange("exchange", i, c.count)
	}
	if j < 0 || j >= c.count {
		return outOfRange("exchange", j, c.count)
	}
	c.items[i], c.items[j] = c.items[j], c.items[i]
	return nil
}

// Clear drops all elements and keeps the allocated buffer.
func (c *Collection[T]) Clear() {
	clear(c.items[:c.count])
	c.count = 0
	c.observer.Changed(c.count, len(c.items))
}

func (c *Collection[T]) Empty() bool {
	return c.count == 0
}

func (c *Collection[T]) Size() int {
	return c.count
}

// Items returns a copy of the live elements.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.items[:c.count])
}

func (c *Collection[T]) Values() []interface{} {
	values := make([]interface{}, c.count)
	for i, item := range c.items[:c.count] {
		values[i] = item
	}
	return values
}

// String renders the elements as "[e1, e2, ...]" using their default
// formatting. An empty collection renders as "[]". The value receiver lets
// collections held by value render nested as well.
func (c Collection[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range c.items[:c.count] {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, item)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (c *Collection[T]) ensureCapacity(needed int) {
	if needed <= len(c.items) {
		return
	}
	capacity := c.policy.NextCapacity(len(c.items), needed)
	items := make([]T, capacity)
	copy(items, c.items[:c.count])
	from := len(c.items)
	c.items = items
	c.logger.WithFields(log.Fields{
		"from":  from,
		"to":    capacity,
		"count": c.count,
	}).Debug("collection buffer grown")
	c.observer.Grown(from, capacity)
}
