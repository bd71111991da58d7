// SPDX-License-Identifier: MIT
// Package: lvleet/cyclefixture
//
// errors.go — sentinel and typed errors for the fixture builder.
//
// Error policy:
//   • Sentinels are package-level and never carry formatted parameters.
//   • Typed errors carry context (method, parameter, observed type) and
//     unwrap to their sentinel; callers branch with errors.Is / errors.As.
//   • Builders never panic on bad input; they return one of these errors.

package cyclefixture

import (
	"errors"
	"fmt"
)

// ErrArgumentOrder indicates the sequence and position arguments look swapped.
var ErrArgumentOrder = errors.New("cyclefixture: arguments passed in the wrong order")

// ErrTypeMismatch indicates an argument whose type does not match its contract.
var ErrTypeMismatch = errors.New("cyclefixture: argument type mismatch")

// ErrAssertion indicates an actual result that disagrees with the expected one.
var ErrAssertion = errors.New("cyclefixture: assertion failed")

// ArgumentOrderError reports a call shaped like (pos, values) instead of
// (values, pos). Hint spells out the correct call.
type ArgumentOrderError struct {
	Method string
	Hint   string
}

// Error implements error.
func (e *ArgumentOrderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Method, e.Hint)
}

// Unwrap returns ErrArgumentOrder.
func (e *ArgumentOrderError) Unwrap() error { return ErrArgumentOrder }

// TypeMismatchError reports the parameter whose value had the wrong type.
type TypeMismatchError struct {
	Method string // e.g. "CreateCycleList"
	Param  string // e.g. "values", "pos", "values[2]"
	Want   string // e.g. "[]int"
	Got    string // observed type, "nil" for an untyped nil
}

// Error implements error.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: '%s' must be %s, got %s", e.Method, e.Param, e.Want, e.Got)
}

// Unwrap returns ErrTypeMismatch.
func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// AssertionError reports a mismatch between an actual and an expected verdict.
type AssertionError struct {
	Got, Want bool
}

// Error implements error.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("AssertHasCycle: got %t, want %t", e.Got, e.Want)
}

// Unwrap returns ErrAssertion.
func (e *AssertionError) Unwrap() error { return ErrAssertion }
