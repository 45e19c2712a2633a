package registry

import (
	"sort"
	"sync"

	radix "github.com/armon/go-radix"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/logging"
	"github.com/sinsoku/phony/pkg/rules"
)

// Countries maps country calling codes to their rules
type Countries struct {
	mu       sync.RWMutex
	rules    Registry[*rules.CountryRule]
	reserved map[string]struct{}
	prefixes *radix.Tree // every taken code, registered or reserved
}

// NewCountries creates an empty country registry
func NewCountries() *Countries {
	return &Countries{
		rules:    New[*rules.CountryRule](),
		reserved: make(map[string]struct{}),
		prefixes: radix.New(),
	}
}

// Register binds rule to code. A code that is already registered or
// reserved fails with ErrDuplicateCountry and the existing entry is kept.
func (c *Countries) Register(code string, rule *rules.CountryRule) error {
	if rule == nil {
		return errors.Newf(errors.ErrInvalidInput, "country %s has no rule", code).
			WithDetail("country", code)
	}
	if code != rule.Code() {
		return errors.Newf(errors.ErrInvalidInput, "rule for %s registered under %q", rule.Code(), code).
			WithDetail("country", code)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkFree(code); err != nil {
		return err
	}
	if err := c.rules.Register(code, rule); err != nil {
		return err
	}
	c.prefixes.Insert(code, code)

	logger := logging.GetLogger("registry")
	logger.Trace().Str("country", code).Str("name", rule.Name()).Msg("registered country")
	return nil
}

// Reserve marks code as taken without a rule. Reserved codes cannot be
// registered and resolve to ErrReservedCountry.
func (c *Countries) Reserve(code string) error {
	if !validCode(code) {
		return errors.Newf(errors.ErrInvalidInput, "country code %q must be one to three digits", code).
			WithDetail("country", code)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkFree(code); err != nil {
		return err
	}
	c.reserved[code] = struct{}{}
	c.prefixes.Insert(code, code)

	logger := logging.GetLogger("registry")
	logger.Trace().Str("country", code).Msg("reserved country")
	return nil
}

func (c *Countries) checkFree(code string) error {
	_, reserved := c.reserved[code]
	if reserved || c.rules.Has(code) {
		return errors.Newf(errors.ErrDuplicateCountry, "country %s is already defined", code).
			WithDetail("country", code).
			WithDetail("reserved", reserved)
	}
	return nil
}

// Lookup returns the rule registered for code
func (c *Countries) Lookup(code string) (*rules.CountryRule, bool) {
	rule, err := c.rules.Get(code)
	if err != nil {
		return nil, false
	}
	return rule, true
}

// Get is Lookup with a coded error distinguishing reserved from unknown codes
func (c *Countries) Get(code string) (*rules.CountryRule, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.reserved[code]; ok {
		return nil, errors.Newf(errors.ErrReservedCountry, "country code %s is reserved", code).
			WithDetail("country", code)
	}
	rule, err := c.rules.Get(code)
	if err != nil {
		return nil, errors.Newf(errors.ErrUnknownCountry, "no rules for country code %s", code).
			WithDetail("country", code)
	}
	return rule, nil
}

// IsReserved reports whether code was reserved
func (c *Countries) IsReserved(code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.reserved[code]
	return ok
}

// Resolve finds the country whose code is the longest prefix of an
// international digit string and returns its rule with the national rest.
func (c *Countries) Resolve(digits string) (*rules.CountryRule, string, error) {
	c.mu.RLock()
	code, _, ok := c.prefixes.LongestPrefix(digits)
	c.mu.RUnlock()

	if !ok {
		return nil, "", errors.Newf(errors.ErrUnknownCountry, "no country code prefixes %q", digits).
			WithDetail("digits", digits)
	}
	rule, err := c.Get(code)
	if err != nil {
		return nil, "", err
	}
	return rule, digits[len(code):], nil
}

// Codes returns all registered country codes, sorted
func (c *Countries) Codes() []string {
	return c.rules.List()
}

// Reserved returns all reserved codes, sorted
func (c *Countries) Reserved() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	codes := make([]string, 0, len(c.reserved))
	for code := range c.reserved {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Count returns the number of registered countries
func (c *Countries) Count() int {
	return c.rules.Count()
}

func validCode(code string) bool {
	if code == "" || len(code) > 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
