/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package collection

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		nums := MakeCollection[int]()
		for j := 0; j < 100000; j++ {
			nums.Add(j)
		}
	}
}

func BenchmarkAddRange(b *testing.B) {
	arraySize := 100000
	a := make([]int, arraySize)
	for i := range a {
		a[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nums := MakeCollection[int]()
		nums.AddRange(a...)
	}
}

func BenchmarkGet(b *testing.B) {
	arraySize := 100000
	a := make([]int, arraySize)
	for i := range a {
		a[i] = i
	}
	col := MakeCollection(a...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		l := col.Count()
		for j := 0; j < l; j++ {
			v, _ := col.Get(j)
			sum += v
		}
		assert.Equal(b, sum, (arraySize*(arraySize-1))/2)
	}
}

func BenchmarkRemoveAtEnd(b *testing.B) {
	arraySize := 100000
	a := make([]int, arraySize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		col := MakeCollection(a...)
		b.StartTimer()
		for j := arraySize - 1; j >= 0; j-- {
			_ = col.RemoveAt(j)
		}
	}
}
