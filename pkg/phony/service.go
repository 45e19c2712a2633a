package phony

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/sinsoku/phony/pkg/digits"
	"github.com/sinsoku/phony/pkg/format"
	"github.com/sinsoku/phony/pkg/logging"
	"github.com/sinsoku/phony/pkg/metrics"
	"github.com/sinsoku/phony/pkg/registry"
	"github.com/sinsoku/phony/pkg/rules"
)

// Service decomposes and formats numbers against a country registry
type Service struct {
	countries *registry.Countries
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// Option configures a Service
type Option func(*Service)

// WithMetrics records every decomposition on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New creates a Service reading from countries
func New(countries *registry.Countries, opts ...Option) *Service {
	s := &Service{
		countries: countries,
		logger:    logging.GetLogger("phony"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Countries returns the registry the service reads from
func (s *Service) Countries() *registry.Countries { return s.countries }

// Metrics returns the attached metrics, or nil
func (s *Service) Metrics() *metrics.Metrics { return s.metrics }

// Result is a decomposed number
type Result struct {
	Input         string              `json:"input" yaml:"input"`
	Decomposition rules.Decomposition `json:"decomposition" yaml:"decomposition"`
	Vanity        bool                `json:"vanity,omitempty" yaml:"vanity,omitempty"`

	rule *rules.CountryRule
}

// Rule returns the country rule that produced the result
func (r Result) Rule() *rules.CountryRule { return r.rule }

// Split decomposes raw. country is the calling code used for national
// input and may be empty.
func (s *Service) Split(raw, country string) (Result, error) {
	start := time.Now()
	res, code, err := s.split(raw, country)
	s.metrics.Observe(code, err, time.Since(start))

	if err != nil {
		s.logger.Debug().Str("input", raw).Str("country", code).Err(err).Msg("decomposition failed")
		return Result{}, err
	}
	s.logger.Trace().
		Str("input", raw).
		Str("country", code).
		Str("ndc", res.Decomposition.NDC).
		Strs("groups", res.Decomposition.Groups).
		Msg("decomposed")
	return res, nil
}

func (s *Service) split(raw, country string) (Result, string, error) {
	number, err := digits.Parse(raw)
	if err != nil {
		return Result{}, country, err
	}

	var rule *rules.CountryRule
	national := number.Digits
	switch {
	case number.International || country == "":
		rule, national, err = s.countries.Resolve(number.Digits)
	default:
		rule, err = s.countries.Get(country)
	}
	if err != nil {
		return Result{}, country, err
	}

	d, err := rule.Decompose(national)
	if err != nil {
		return Result{}, rule.Code(), err
	}
	return Result{Input: raw, Decomposition: d, Vanity: number.Vanity, rule: rule}, rule.Code(), nil
}

// Normalize returns raw as country code followed by the national
// significant number
func (s *Service) Normalize(raw, country string) (string, error) {
	res, err := s.Split(raw, country)
	if err != nil {
		return "", err
	}
	return format.Normalize(res.Decomposition), nil
}

// Format renders raw with opts
func (s *Service) Format(raw, country string, opts format.Options) (string, error) {
	res, err := s.Split(raw, country)
	if err != nil {
		return "", err
	}
	return format.Format(res.rule, res.Decomposition, opts), nil
}

// Plausible reports whether raw decomposes under the registered rules
// into an NDC or at least one subscriber group.
func (s *Service) Plausible(raw, country string) bool {
	res, err := s.Split(raw, country)
	if err != nil {
		return false
	}
	return len(res.Decomposition.Parts()) > 0
}
