// Package matchers extracts a national destination code (NDC) from the front
// of a national digit string.
//
// The set of matchers is closed:
//
//   - Fixed takes a fixed number of leading digits as the NDC.
//   - None never takes an NDC; the whole input is the subscriber number.
//   - Variable takes the longest declared candidate that prefixes the input.
//   - Regex takes the text captured by the single group of a pattern that
//     matches the whole input.
//
// Matchers are built once, validated at construction time, and are immutable
// afterwards, so a single matcher can be shared by any number of country
// rules and goroutines.
package matchers
