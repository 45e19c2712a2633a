// Package splitters divides the subscriber part of a national number into
// formatted groups.
//
// Two splitters exist. Fixed applies an ordered list of group sizes. Regex
// picks the sizes from the first pattern that matches the digits, falling
// back to a default list when none does.
//
// Splitting never drops digits: concatenating the groups in order always
// reproduces the input.
package splitters
