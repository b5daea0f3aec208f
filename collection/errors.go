/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package collection

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by every operation that receives an index
// outside of its valid range.
var ErrIndexOutOfRange = errors.New("index out of range")

type IndexOutOfRangeError struct {
	Op    string
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Count)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

func outOfRange(op string, index int, count int) error {
	return &IndexOutOfRangeError{Op: op, Index: index, Count: count}
}
