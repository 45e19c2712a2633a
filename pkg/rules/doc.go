// Package rules composes matchers and splitters into country rules and
// decomposes national numbers with them.
//
// # Composition
//
// A Sequence pairs one NDC matcher with one splitter. An Alternation is an
// ordered list of sequences:
//
//	fixed, _ := matchers.NewFixed(2, true)
//	groups, _ := splitters.NewFixed(splitters.Exacts(3, 2, 2)...)
//	seq, _ := rules.NewSequence(fixed, groups)
//	alt, _ := rules.NewAlternation(seq)
//
// A CountryRule binds an alternation to a country code, optionally with a
// trunk rule and NDC validators:
//
//	trunk, _ := rules.NewTrunk("0")
//	ch, _ := rules.NewCountryRule("41", alt, rules.WithTrunk(trunk))
//
// # Decomposition
//
// Decompose strips the trunk code when present, then tries each sequence's
// matcher in declaration order. The first matcher that succeeds commits its
// sequence: the remaining digits go to that sequence's splitter, and a
// splitter failure is reported as ErrNoSplitRule rather than moving on to the
// next sequence. When no matcher succeeds the result is ErrNoMatchingRule.
// Validators then run in declaration order and the first that rejects the
// NDC ends decomposition with ErrInvalidNDC.
//
// Every type here is immutable once built. Construction errors are reported
// as ErrMalformedRule and never surface at decomposition time.
package rules
