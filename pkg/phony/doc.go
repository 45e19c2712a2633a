// Package phony splits phone numbers into country code, trunk, national
// destination code and subscriber groups, and renders them.
//
// A Service owns the country registry it reads from:
//
//	countries := registry.NewCountries()
//	definitions.LoadBuiltin(countries)
//	svc := phony.New(countries)
//	res, err := svc.Split("+41 44 364 35 33", "")
//	// res.Decomposition: cc 41, ndc 44, groups 364 35 33
//
// Input starting with '+' is international and its country is resolved from
// the digits. Otherwise a given country code marks the input as national,
// and without one the digits are expected to start with the country code.
package phony
