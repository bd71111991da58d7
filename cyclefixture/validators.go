// SPDX-License-Identifier: MIT
// Package: lvleet/cyclefixture
//
// validators.go — shape checks for dynamically typed fixture arguments.
//
// Contract:
//   • "Integer" means any signed or unsigned Go integer kind; bool is not.
//   • "Sequence" means a slice or array; strings are not sequences.
//   • Checks run strictly before construction and in a fixed order.
//
// Complexity: O(len(values)) time, O(len(values)) space for the decoded ints.

package cyclefixture

import (
	"fmt"
	"math"
	"reflect"
)

// Expected type names used in TypeMismatchError.Want.
const (
	wantValues  = "a []int"
	wantPos     = "an int"
	wantElement = "an int"
)

// validateArgs checks (values, pos) for method and decodes them.
// It returns the first failure in the documented order.
func validateArgs(method string, values, pos any) ([]int, int, error) {
	// 1) Swapped call: (pos, values).
	if isInteger(values) && isSequence(pos) {
		return nil, 0, &ArgumentOrderError{
			Method: method,
			Hint:   swapHint(method),
		}
	}
	// 2) values must be a sequence.
	if !isSequence(values) {
		return nil, 0, &TypeMismatchError{Method: method, Param: "values", Want: wantValues, Got: typeName(values)}
	}
	// 3) pos must be an integer.
	p, ok := toInt(pos)
	if !ok {
		return nil, 0, &TypeMismatchError{Method: method, Param: "pos", Want: wantPos, Got: typeName(pos)}
	}
	// 4) every element must be an integer.
	rv := reflect.ValueOf(values)
	ints := make([]int, rv.Len())
	for i := range ints {
		elem := rv.Index(i).Interface()
		n, ok := toInt(elem)
		if !ok {
			return nil, 0, &TypeMismatchError{
				Method: method,
				Param:  fmt.Sprintf("values[%d]", i),
				Want:   wantElement,
				Got:    typeName(elem),
			}
		}
		ints[i] = n
	}

	return ints, p, nil
}

// swapHint renders the human-readable explanation for a swapped call.
func swapHint(method string) string {
	switch method {
	case methodRunHasCycle:
		return "it looks like you passed (newDetector, pos, values); the correct call is RunHasCycle(newDetector, values, pos)"
	default:
		return "'values' should be a []int and 'pos' should be an int; it looks like the arguments were passed in the wrong order (pos, values)"
	}
}

// isInteger reports whether v holds a Go integer kind.
func isInteger(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// isSequence reports whether v is a slice or an array.
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()

	return k == reflect.Slice || k == reflect.Array
}

// toInt converts any integer kind to int, rejecting values that do not fit.
func toInt(v any) (int, bool) {
	if !isInteger(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	if rv.CanInt() {
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	}
	u := rv.Uint()
	if u > math.MaxInt {
		return 0, false
	}

	return int(u), true
}

// typeName names the dynamic type of v for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return reflect.TypeOf(v).String()
}
