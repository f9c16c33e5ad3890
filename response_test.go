package openfigi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingJobResultDiscrimination(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want MappingJobResult
	}{
		{
			"figi list",
			`{"data": [{"figi": "BBG000BLNNH6", "ticker": "IBM"}]}`,
			MappingJobResult{
				Kind: ResultFigiList,
				Data: []FigiResult{{FIGI: "BBG000BLNNH6", Ticker: "IBM"}},
			},
		},
		{
			"empty figi list is still a list",
			`{"data": []}`,
			MappingJobResult{Kind: ResultFigiList, Data: []FigiResult{}},
		},
		{
			"not found",
			`{"warning": "No identifier found."}`,
			MappingJobResult{Kind: ResultFigiNotFound, Warning: "No identifier found."},
		},
		{
			"error",
			`{"error": "invalid idValue"}`,
			MappingJobResult{Kind: ResultError, Err: "invalid idValue"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result MappingJobResult
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &result))
			assert.Equal(t, tt.want, result)

			// Marshalling re-emits the selected variant only.
			data, err := json.Marshal(result)
			require.NoError(t, err)
			assert.JSONEq(t, tt.raw, string(data))
		})
	}
}

func TestMappingJobResultUnknownShape(t *testing.T) {
	for _, raw := range []string{`{}`, `{"figi": "BBG000BLNNH6"}`, `{"total": 3}`} {
		var result MappingJobResult
		err := json.Unmarshal([]byte(raw), &result)
		assert.Error(t, err, "shape %s must be rejected", raw)
	}
}

func TestMappingJobResultArrayOrder(t *testing.T) {
	raw := `[
		{"data": [{"figi": "BBG000BLNNH6"}]},
		{"warning": "No identifier found."},
		{"error": "invalid idValue"}
	]`

	var results []MappingJobResult
	require.NoError(t, json.Unmarshal([]byte(raw), &results))
	require.Len(t, results, 3)
	assert.Equal(t, ResultFigiList, results[0].Kind)
	assert.Equal(t, ResultFigiNotFound, results[1].Kind)
	assert.Equal(t, ResultError, results[2].Kind)
}

func TestFigiResultDecode(t *testing.T) {
	raw := `{
		"figi": "BBG000BLNNH6",
		"name": "INTL BUSINESS MACHINES CORP",
		"ticker": "IBM",
		"exchCode": "US",
		"compositeFIGI": "BBG000BLNNH6",
		"securityType": "Common Stock",
		"marketSector": "Equity",
		"shareClassFIGI": "BBG001S5S399",
		"securityType2": "Common Stock",
		"securityDescription": "IBM"
	}`

	var result FigiResult
	require.NoError(t, json.Unmarshal([]byte(raw), &result))
	assert.Equal(t, "BBG000BLNNH6", result.FIGI)
	assert.Equal(t, "IBM", result.Ticker)
	assert.Equal(t, "BBG001S5S399", result.ShareClassFIGI)
	assert.Empty(t, result.Metadata)
}
