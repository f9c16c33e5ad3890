package openfigi

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/tlouarn/openfigi-go/constants"
)

// Cross-field requirements. Each rule keys on a field validated earlier in
// the pass.
var (
	idTypesNeedingSecurityType2 = sets.New(
		constants.IDTYPE_BASE_TICKER,
		constants.IDTYPE_ID_EXCH_SYMBOL,
	)
	securityTypes2NeedingExpiration = sets.New(
		constants.SECURITYTYPE2_Option,
		constants.SECURITYTYPE2_Warrant,
	)
)

// SecurityFilters are the optional constraints shared by MappingJob and
// Query. Unset fields are omitted from the wire payload.
type SecurityFilters struct {
	// Exchange code (cannot be used together with MicCode).
	// See https://api.openfigi.com/v3/mapping/values/exchCode
	ExchCode string `json:"exchCode,omitempty"`
	// ISO market identification code (cannot be used together with ExchCode).
	// See https://api.openfigi.com/v3/mapping/values/micCode
	MicCode string `json:"micCode,omitempty"`
	// Currency. See https://api.openfigi.com/v3/mapping/values/currency
	Currency string `json:"currency,omitempty"`
	// Market sector description.
	// See https://api.openfigi.com/v3/mapping/values/marketSecDes
	MarketSecDes string `json:"marketSecDes,omitempty"`
	// Security type. See https://api.openfigi.com/v3/mapping/values/securityType
	SecurityType string `json:"securityType,omitempty"`
	// An alternative security type, typically less specific than SecurityType.
	// See https://api.openfigi.com/v3/mapping/values/securityType2
	SecurityType2 string `json:"securityType2,omitempty"`
	// True to include equity instruments not listed on an exchange.
	IncludeUnlistedEquities bool `json:"includeUnlistedEquities,omitempty"`
	// Option type, "Call" or "Put".
	OptionType string `json:"optionType,omitempty"`
	// Strike price interval.
	Strike *NumberInterval `json:"strike,omitempty"`
	// Contract size interval.
	ContractSize *NumberInterval `json:"contractSize,omitempty"`
	// Coupon interval.
	Coupon *NumberInterval `json:"coupon,omitempty"`
	// Expiration date interval. Required when SecurityType2 is "Option" or
	// "Warrant".
	Expiration *DateInterval `json:"expiration,omitempty"`
	// Maturity date interval. Required when SecurityType2 is "Pool".
	Maturity *DateInterval `json:"maturity,omitempty"`
	// State code. See https://api.openfigi.com/v3/mapping/values/stateCode
	StateCode string `json:"stateCode,omitempty"`
}

// validate runs the shared filter rules and returns every violation found.
func (f *SecurityFilters) validate() ValidationErrors {
	var errs ValidationErrors

	if f.ExchCode != "" && f.MicCode != "" {
		errs = append(errs, FieldError{"micCode", "cannot be used together with exchCode"})
	}
	if f.OptionType != "" && !constants.OptionTypes.Has(f.OptionType) {
		errs = append(errs, FieldError{"optionType", `must be "Call" or "Put"`})
	}

	numbers := []struct {
		name     string
		interval *NumberInterval
	}{
		{"strike", f.Strike},
		{"contractSize", f.ContractSize},
		{"coupon", f.Coupon},
	}
	for _, n := range numbers {
		if n.interval == nil {
			continue
		}
		if err := n.interval.Validate(); err != nil {
			errs = append(errs, FieldError{n.name, err.Error()})
		}
	}

	dates := []struct {
		name     string
		interval *DateInterval
	}{
		{"expiration", f.Expiration},
		{"maturity", f.Maturity},
	}
	for _, d := range dates {
		if d.interval == nil {
			continue
		}
		if err := d.interval.Validate(); err != nil {
			errs = append(errs, FieldError{d.name, err.Error()})
		}
	}

	if securityTypes2NeedingExpiration.Has(f.SecurityType2) && f.Expiration == nil {
		errs = append(errs, FieldError{"expiration", `is required when securityType2 is "Option" or "Warrant"`})
	}
	if f.SecurityType2 == constants.SECURITYTYPE2_Pool && f.Maturity == nil {
		errs = append(errs, FieldError{"maturity", `is required when securityType2 is "Pool"`})
	}

	return errs
}

// MappingJob identifies a single security by a third-party identifier plus
// optional disambiguating filters. Jobs are stateless: build one, submit it,
// discard it.
type MappingJob struct {
	// Type of third-party identifier, one of the values in
	// [github.com/tlouarn/openfigi-go/constants].
	IDType string `json:"idType"`
	// Value for the represented third-party identifier, a string or a number.
	IDValue any `json:"idValue"`

	SecurityFilters
}

// Validate runs the full validation pass over the job and returns either nil
// or a ValidationErrors listing every violated rule.
func (j *MappingJob) Validate() error {
	var errs ValidationErrors

	switch {
	case j.IDType == "":
		errs = append(errs, FieldError{"idType", "is required"})
	case !constants.IDTypes.Has(j.IDType):
		errs = append(errs, FieldError{"idType", "is not a known identifier type"})
	case idTypesNeedingSecurityType2.Has(j.IDType) && j.SecurityType2 == "":
		errs = append(errs, FieldError{"securityType2", fmt.Sprintf("is required when idType is %q", j.IDType)})
	}
	if j.IDValue == nil {
		errs = append(errs, FieldError{"idValue", "is required"})
	}

	errs = append(errs, j.SecurityFilters.validate()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Query is a free-text search request for the filter endpoint.
type Query struct {
	// Free-text search terms.
	Query string `json:"query"`
	// Start is the server-issued pagination cursor. The client manages it on
	// its own copy of the query while paginating; leave it empty.
	Start string `json:"start,omitempty"`

	SecurityFilters
}

// Validate runs the full validation pass over the query and returns either
// nil or a ValidationErrors listing every violated rule.
func (q *Query) Validate() error {
	var errs ValidationErrors

	if q.Query == "" {
		errs = append(errs, FieldError{"query", "is required"})
	}

	errs = append(errs, q.SecurityFilters.validate()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}
