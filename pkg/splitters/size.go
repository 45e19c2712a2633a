package splitters

import (
	"strconv"
	"strings"

	"github.com/sinsoku/phony/pkg/errors"
)

// Size is the size of one group: an exact count when Min == Max,
// an inclusive range otherwise
type Size struct {
	Min int
	Max int
}

// Exact returns a size of exactly n digits
func Exact(n int) Size { return Size{Min: n, Max: n} }

// Range returns a size of min to max digits, inclusive
func Range(min, max int) Size { return Size{Min: min, Max: max} }

// Exacts converts counts into exact sizes
func Exacts(counts ...int) []Size {
	sizes := make([]Size, len(counts))
	for i, n := range counts {
		sizes[i] = Exact(n)
	}
	return sizes
}

// IsRange reports whether the size allows more than one count
func (s Size) IsRange() bool { return s.Min != s.Max }

func (s Size) String() string {
	if s.IsRange() {
		return strconv.Itoa(s.Min) + "-" + strconv.Itoa(s.Max)
	}
	return strconv.Itoa(s.Max)
}

// ParseSize reads "3", "3-4" or "3..4"
func ParseSize(text string) (Size, error) {
	text = strings.TrimSpace(text)
	lo, hi, found := strings.Cut(text, "..")
	if !found {
		lo, hi, found = strings.Cut(text, "-")
	}

	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Size{}, errors.Wrapf(err, errors.ErrMalformedRule, "invalid group size %q", text)
	}
	max := min
	if found {
		max, err = strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return Size{}, errors.Wrapf(err, errors.ErrMalformedRule, "invalid group size %q", text)
		}
	}

	size := Size{Min: min, Max: max}
	if err := size.validate(); err != nil {
		return Size{}, err
	}
	return size, nil
}

func (s Size) validate() error {
	if s.Min < 0 || s.Max < 1 || s.Min > s.Max {
		return errors.Newf(errors.ErrMalformedRule, "invalid group size %d-%d", s.Min, s.Max).
			WithDetail("min", s.Min).
			WithDetail("max", s.Max)
	}
	return nil
}

func validateSizes(sizes []Size) error {
	for _, s := range sizes {
		if err := s.validate(); err != nil {
			return err
		}
	}
	return nil
}

func sizesString(sizes []Size) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// apply cuts digits into groups of the given sizes. A group takes up to Max
// digits; when fewer than Min remain it takes what is left and splitting
// stops. Digits left over after the last size become one trailing group.
func apply(sizes []Size, digits string) []string {
	groups := make([]string, 0, len(sizes)+1)
	rest := digits
	for _, size := range sizes {
		if rest == "" {
			break
		}
		n := size.Max
		if len(rest) < n {
			n = len(rest)
		}
		groups = append(groups, rest[:n])
		rest = rest[n:]
	}
	if rest != "" {
		groups = append(groups, rest)
	}
	return groups
}
