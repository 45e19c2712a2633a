package output

import (
	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/metrics"
	"github.com/sinsoku/phony/pkg/phony"
	"github.com/sinsoku/phony/pkg/registry"
)

// Number is a decomposed number as printed
type Number struct {
	Input       string   `json:"input" yaml:"input"`
	CountryCode string   `json:"country_code" yaml:"country_code"`
	Country     string   `json:"country,omitempty" yaml:"country,omitempty"`
	ISO         string   `json:"iso,omitempty" yaml:"iso,omitempty"`
	Trunk       string   `json:"trunk,omitempty" yaml:"trunk,omitempty"`
	NDC         string   `json:"ndc" yaml:"ndc"`
	Groups      []string `json:"groups" yaml:"groups"`
	Formatted   string   `json:"formatted,omitempty" yaml:"formatted,omitempty"`
	Vanity      bool     `json:"vanity,omitempty" yaml:"vanity,omitempty"`
}

// NewNumber builds the printed form of res
func NewNumber(res phony.Result, formatted string) Number {
	d := res.Decomposition
	n := Number{
		Input:       res.Input,
		CountryCode: d.CountryCode,
		Trunk:       d.Trunk,
		NDC:         d.NDC,
		Groups:      d.Groups,
		Formatted:   formatted,
		Vanity:      res.Vanity,
	}
	if rule := res.Rule(); rule != nil {
		n.Country = rule.Name()
		n.ISO = rule.ISO()
	}
	return n
}

// Value is a single derived value: a formatted number, a normalized
// number or a plausibility verdict
type Value struct {
	Input string `json:"input" yaml:"input"`
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

// Failure is a number that could not be handled
type Failure struct {
	Input   string `json:"input" yaml:"input"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// NewFailure describes err for input
func NewFailure(input string, err error) Failure {
	return Failure{Input: input, Code: string(errors.GetErrorCode(err)), Message: err.Error()}
}

// BatchItem is one entry of a batch
type BatchItem struct {
	Number  *Number  `json:"number,omitempty" yaml:"number,omitempty"`
	Failure *Failure `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// Batch is the outcome of a batch run
type Batch struct {
	Items []BatchItem      `json:"items" yaml:"items"`
	Stats []metrics.Sample `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// NewBatch builds the printed form of results; format renders each
// successful result
func NewBatch(results []phony.BatchResult, format func(phony.Result) string) Batch {
	b := Batch{Items: make([]BatchItem, len(results))}
	for i, r := range results {
		if r.Err != nil {
			f := NewFailure(r.Input, r.Err)
			b.Items[i].Failure = &f
			continue
		}
		n := NewNumber(r.Result, format(r.Result))
		b.Items[i].Number = &n
	}
	return b
}

// Country is a row of the country listing
type Country struct {
	Code     string `json:"code" yaml:"code"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	ISO      string `json:"iso,omitempty" yaml:"iso,omitempty"`
	Trunk    string `json:"trunk,omitempty" yaml:"trunk,omitempty"`
	Rules    int    `json:"rules" yaml:"rules"`
	Reserved bool   `json:"reserved,omitempty" yaml:"reserved,omitempty"`
}

// Countries is the country listing
type Countries struct {
	Countries []Country `json:"countries" yaml:"countries"`
}

// NewCountries lists registered and, if asked, reserved codes
func NewCountries(reg *registry.Countries, reserved bool) Countries {
	var list Countries
	for _, code := range reg.Codes() {
		rule, _ := reg.Lookup(code)
		c := Country{Code: code, Name: rule.Name(), ISO: rule.ISO(), Rules: len(rule.Alternation().Sequences())}
		if rule.Trunk() != nil {
			c.Trunk = rule.Trunk().Code()
		}
		list.Countries = append(list.Countries, c)
	}
	if reserved {
		for _, code := range reg.Reserved() {
			list.Countries = append(list.Countries, Country{Code: code, Reserved: true})
		}
	}
	return list
}

// Check is a libphonenumber comparison
type Check = phony.CrossCheck

// Stats is a metrics summary
type Stats struct {
	Samples []metrics.Sample `json:"samples" yaml:"samples"`
}
