// SPDX-License-Identifier: MIT
// Package cyclefixture builds linked-list fixtures, optionally cyclic, for
// driving cycle-detection solutions in tests and case runs.
//
// What:
//
//   - CreateCycleList(values, pos) builds a listnode.List[int] from a sequence
//     of integers and links the tail back to index pos when 0 ≤ pos < len.
//   - RunHasCycle(newDetector, values, pos) builds the fixture, instantiates a
//     Detector and returns its verdict.
//   - AssertHasCycle(result, expected) compares a verdict with the expectation.
//
// Why the arguments are `any`:
//
//   - Fixture parameters usually arrive from decoded case files, where a
//     swapped column silently becomes (5, [2 0 -4 -1]). Validation catches
//     that shape before anything is constructed.
//
// Validation order (first failure wins, nothing is built on failure):
//
//  1. values is an integer and pos is a sequence → *ArgumentOrderError.
//  2. values is not a sequence (strings are not)  → *TypeMismatchError "values".
//  3. pos is not an integer                        → *TypeMismatchError "pos".
//  4. an element of values is not an integer       → *TypeMismatchError "values[i]".
//
// Integers:
//
//   - Any signed or unsigned Go integer kind is accepted for pos and for the
//     elements of values, provided it fits in an int.
//   - bool is never an integer: (true, [1]) is a type mismatch on values,
//     not a swapped call, and a bool pos or element is rejected.
//   - float kinds are rejected even when they hold a whole number.
//
// Cycle policy:
//
//   - pos == -1 (NoCycle) leaves a terminated chain.
//   - 0 ≤ pos < len links the tail to node pos.
//   - Any other pos is accepted and also leaves a terminated chain.
//
// Errors:
//
//   - ErrArgumentOrder, ErrTypeMismatch, ErrAssertion are sentinels; the typed
//     errors unwrap to them, so both errors.Is and errors.As work.
package cyclefixture
