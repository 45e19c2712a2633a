package phony

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/format"
	"github.com/sinsoku/phony/pkg/rules"
)

// CrossCheck compares a decomposition with libphonenumber's reading of the
// same number
type CrossCheck struct {
	E164          string              `json:"e164" yaml:"e164"`
	Decomposition rules.Decomposition `json:"decomposition" yaml:"decomposition"`

	// libphonenumber's view
	Valid         bool   `json:"valid" yaml:"valid"`
	Region        string `json:"region,omitempty" yaml:"region,omitempty"`
	NDC           string `json:"ndc" yaml:"ndc"`
	International string `json:"international" yaml:"international"`

	// NDCAgrees is set when both libraries extract the same NDC
	NDCAgrees bool `json:"ndc_agrees" yaml:"ndc_agrees"`
}

// CrossCheck decomposes raw and asks libphonenumber about the result
func (s *Service) CrossCheck(raw, country string) (CrossCheck, error) {
	res, err := s.Split(raw, country)
	if err != nil {
		return CrossCheck{}, err
	}

	e164 := "+" + format.Normalize(res.Decomposition)
	number, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return CrossCheck{}, errors.Wrapf(err, errors.ErrInvalidInput, "libphonenumber cannot parse %s", e164).
			WithDetail("e164", e164)
	}

	nsn := phonenumbers.GetNationalSignificantNumber(number)
	ndc := nsn[:min(phonenumbers.GetLengthOfNationalDestinationCode(number), len(nsn))]

	check := CrossCheck{
		E164:          e164,
		Decomposition: res.Decomposition,
		Valid:         phonenumbers.IsValidNumber(number),
		Region:        phonenumbers.GetRegionCodeForNumber(number),
		NDC:           ndc,
		International: phonenumbers.Format(number, phonenumbers.INTERNATIONAL),
	}
	check.NDCAgrees = check.NDC == res.Decomposition.NDC

	s.logger.Debug().
		Str("e164", e164).
		Bool("valid", check.Valid).
		Bool("ndc_agrees", check.NDCAgrees).
		Msg("cross-checked")
	return check, nil
}
