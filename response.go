package openfigi

import (
	"encoding/json"
	"fmt"
)

// FigiResult is one matched security record. The service may omit any field.
type FigiResult struct {
	FIGI                string `json:"figi,omitempty"`
	SecurityType        string `json:"securityType,omitempty"`
	MarketSector        string `json:"marketSector,omitempty"`
	Ticker              string `json:"ticker,omitempty"`
	Name                string `json:"name,omitempty"`
	ExchCode            string `json:"exchCode,omitempty"`
	ShareClassFIGI      string `json:"shareClassFIGI,omitempty"`
	CompositeFIGI       string `json:"compositeFIGI,omitempty"`
	SecurityType2       string `json:"securityType2,omitempty"`
	SecurityDescription string `json:"securityDescription,omitempty"`
	// Metadata is set when the service cannot show the non-FIGI fields.
	Metadata string `json:"metadata,omitempty"`
}

// MappingJobResultKind discriminates the three shapes the mapping endpoint
// returns per submitted job.
type MappingJobResultKind string

const (
	// ResultFigiList: the job matched; Data holds the records.
	ResultFigiList MappingJobResultKind = "data"
	// ResultFigiNotFound: the job matched nothing; Warning explains why.
	ResultFigiNotFound MappingJobResultKind = "warning"
	// ResultError: the service rejected the job; Err carries its message.
	ResultError MappingJobResultKind = "error"
)

// MappingJobResult is the per-job outcome of a mapping request. Exactly one
// of Data, Warning or Err is meaningful, selected by Kind. The result at
// index i corresponds to the MappingJob at index i in the request.
type MappingJobResult struct {
	Kind    MappingJobResultKind
	Data    []FigiResult
	Warning string
	Err     string
}

// UnmarshalJSON inspects the discriminating key once. A response object that
// carries none of the three known keys violates the service contract and
// fails decoding.
func (r *MappingJobResult) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data    *[]FigiResult `json:"data"`
		Warning *string       `json:"warning"`
		Error   *string       `json:"error"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch {
	case raw.Data != nil:
		r.Kind = ResultFigiList
		r.Data = *raw.Data
	case raw.Warning != nil:
		r.Kind = ResultFigiNotFound
		r.Warning = *raw.Warning
	case raw.Error != nil:
		r.Kind = ResultError
		r.Err = *raw.Error
	default:
		return fmt.Errorf("mapping result %s has none of the data, warning or error keys", string(b))
	}
	return nil
}

// MarshalJSON re-emits the wire shape for the selected variant.
func (r MappingJobResult) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case ResultFigiList:
		return json.Marshal(struct {
			Data []FigiResult `json:"data"`
		}{r.Data})
	case ResultFigiNotFound:
		return json.Marshal(struct {
			Warning string `json:"warning"`
		}{r.Warning})
	case ResultError:
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Err})
	}
	return nil, fmt.Errorf("mapping result has unknown kind %q", r.Kind)
}

// filterResponse is one page from the filter endpoint.
type filterResponse struct {
	Data  []FigiResult `json:"data"`
	Error string       `json:"error"`
	Next  string       `json:"next"`
	Total int          `json:"total"`
}

// valuesResponse from GET /mapping/values/{field}.
type valuesResponse struct {
	Values []string `json:"values"`
}
