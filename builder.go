package openfigi

// FiltersBuilder collects the optional filter fields shared by MappingJob
// and Query. It is embedded in the two request builders; use those directly.
type FiltersBuilder struct {
	filters SecurityFilters
}

func (b *FiltersBuilder) SetExchCode(exchCode string) *FiltersBuilder {
	b.filters.ExchCode = exchCode
	return b
}

func (b *FiltersBuilder) SetMicCode(micCode string) *FiltersBuilder {
	b.filters.MicCode = micCode
	return b
}

func (b *FiltersBuilder) SetCurrency(currency string) *FiltersBuilder {
	b.filters.Currency = currency
	return b
}

func (b *FiltersBuilder) SetMarketSecDes(marketSecDes string) *FiltersBuilder {
	b.filters.MarketSecDes = marketSecDes
	return b
}

func (b *FiltersBuilder) SetSecurityType(securityType string) *FiltersBuilder {
	b.filters.SecurityType = securityType
	return b
}

func (b *FiltersBuilder) SetSecurityType2(securityType2 string) *FiltersBuilder {
	b.filters.SecurityType2 = securityType2
	return b
}

func (b *FiltersBuilder) SetIncludeUnlistedEquities(include bool) *FiltersBuilder {
	b.filters.IncludeUnlistedEquities = include
	return b
}

func (b *FiltersBuilder) SetOptionType(optionType string) *FiltersBuilder {
	b.filters.OptionType = optionType
	return b
}

// Usage:
//
//	builder.SetStrike(openfigi.Number(2), nil)
func (b *FiltersBuilder) SetStrike(low, high *float64) *FiltersBuilder {
	b.filters.Strike = &NumberInterval{low, high}
	return b
}

func (b *FiltersBuilder) SetContractSize(low, high *float64) *FiltersBuilder {
	b.filters.ContractSize = &NumberInterval{low, high}
	return b
}

func (b *FiltersBuilder) SetCoupon(low, high *float64) *FiltersBuilder {
	b.filters.Coupon = &NumberInterval{low, high}
	return b
}

// Usage:
//
//	builder.SetExpiration(openfigi.Day(2024, time.January, 1), openfigi.Day(2024, time.June, 30))
func (b *FiltersBuilder) SetExpiration(low, high *Date) *FiltersBuilder {
	b.filters.Expiration = &DateInterval{low, high}
	return b
}

func (b *FiltersBuilder) SetMaturity(low, high *Date) *FiltersBuilder {
	b.filters.Maturity = &DateInterval{low, high}
	return b
}

func (b *FiltersBuilder) SetStateCode(stateCode string) *FiltersBuilder {
	b.filters.StateCode = stateCode
	return b
}

// MappingJobBuilder assembles a MappingJob. Build validates the fully
// populated candidate in one pass; a failed build yields no job.
type MappingJobBuilder struct {
	FiltersBuilder
	idType  string
	idValue any
}

// NewMappingJob starts a builder for a job identifying one security.
func NewMappingJob(idType string, idValue any) *MappingJobBuilder {
	return &MappingJobBuilder{idType: idType, idValue: idValue}
}

func (b *MappingJobBuilder) Build() (MappingJob, error) {
	job := MappingJob{
		IDType:          b.idType,
		IDValue:         b.idValue,
		SecurityFilters: b.filters,
	}
	if err := job.Validate(); err != nil {
		return MappingJob{}, err
	}
	return job, nil
}

// QueryBuilder assembles a filter Query. Build validates the fully populated
// candidate in one pass; a failed build yields no query.
type QueryBuilder struct {
	FiltersBuilder
	query string
}

// NewQuery starts a builder for a free-text search.
func NewQuery(query string) *QueryBuilder {
	return &QueryBuilder{query: query}
}

func (b *QueryBuilder) Build() (Query, error) {
	q := Query{
		Query:           b.query,
		SecurityFilters: b.filters,
	}
	if err := q.Validate(); err != nil {
		return Query{}, err
	}
	return q, nil
}
