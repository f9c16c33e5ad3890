package openfigi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production OpenFIGI endpoint, version path included.
const DefaultBaseURL = "https://api.openfigi.com/v3"

// Per-minute quotas and per-request job limits by tier. The tier is decided
// solely by whether an API key was supplied.
const (
	MaxMappingRequestsNoKey = 25
	MaxMappingJobsNoKey     = 10
	MaxSearchRequestsNoKey  = 5

	MaxMappingRequestsKey = 250
	MaxMappingJobsKey     = 100
	MaxSearchRequestsKey  = 20
)

// pageDelayBuffer pads the pagination delay against clock skew between the
// client and the service's rate-limit window.
const pageDelayBuffer = 500 * time.Millisecond

// Client provides access to the OpenFIGI v3 REST API. A Client holds no
// mutable state apart from its immutable credential, so concurrent use from
// multiple goroutines is safe.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
	pageDelay  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// NewClient creates a new OpenFIGI client. Pass an empty apiKey to use the
// anonymous tier, which has lower rate and batch limits.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.pageDelay == 0 {
		c.pageDelay = searchRequestDelay(c.MaxSearchRequests())
	}

	return c
}

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithPageDelay overrides the wait between paginated filter requests. The
// default is derived from the tier's search quota; the service does not
// mandate a value.
func WithPageDelay(d time.Duration) Option {
	return func(c *Client) {
		c.pageDelay = d
	}
}

// searchRequestDelay spaces requests to stay under a per-minute quota, with
// a little headroom.
func searchRequestDelay(requestsPerMinute int) time.Duration {
	return time.Duration(float64(time.Minute)/float64(requestsPerMinute)) + pageDelayBuffer
}

// MaxMappingJobs returns the per-request job limit for the client's tier.
func (c *Client) MaxMappingJobs() int {
	if c.apiKey != "" {
		return MaxMappingJobsKey
	}
	return MaxMappingJobsNoKey
}

// MaxMappingRequests returns the tier's mapping requests-per-minute quota.
func (c *Client) MaxMappingRequests() int {
	if c.apiKey != "" {
		return MaxMappingRequestsKey
	}
	return MaxMappingRequestsNoKey
}

// MaxSearchRequests returns the tier's search/filter requests-per-minute
// quota.
func (c *Client) MaxSearchRequests() int {
	if c.apiKey != "" {
		return MaxSearchRequestsKey
	}
	return MaxSearchRequestsNoKey
}

// Map maps third-party identifiers to FIGIs. All jobs are submitted in one
// POST and the result at index i corresponds to the job at index i. If the
// batch exceeds the tier's job limit, Map fails with
// *TooManyMappingJobsError before any network call.
func (c *Client) Map(ctx context.Context, jobs []MappingJob) ([]MappingJobResult, error) {
	if len(jobs) > c.MaxMappingJobs() {
		return nil, &TooManyMappingJobsError{Jobs: len(jobs), Limit: c.MaxMappingJobs()}
	}

	body, err := c.post(ctx, "/mapping", jobs)
	if err != nil {
		return nil, err
	}

	var results []MappingJobResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("unmarshal mapping response: %w", err)
	}
	return results, nil
}

// Filter searches for FIGIs matching the query and follows the server-issued
// cursor until the last page, waiting the page delay between requests to
// stay under the search quota. Results preserve page arrival order; the
// service sorts each page alphabetically by FIGI.
func (c *Client) Filter(ctx context.Context, query Query) ([]FigiResult, error) {
	page, err := c.filterPage(ctx, query)
	if err != nil {
		return nil, err
	}
	results := page.Data

	for page.Next != "" {
		if err := c.waitPageDelay(ctx); err != nil {
			return nil, err
		}
		query.Start = page.Next
		if page, err = c.filterPage(ctx, query); err != nil {
			return nil, err
		}
		results = append(results, page.Data...)
	}

	return results, nil
}

// GetTotalNumberOfMatches returns the total number of results for the query.
// Only one call is made; nothing is paginated.
func (c *Client) GetTotalNumberOfMatches(ctx context.Context, query Query) (int, error) {
	page, err := c.filterPage(ctx, query)
	if err != nil {
		return 0, err
	}
	return page.Total, nil
}

func (c *Client) filterPage(ctx context.Context, query Query) (*filterResponse, error) {
	body, err := c.post(ctx, "/filter", query)
	if err != nil {
		return nil, err
	}

	var page filterResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("unmarshal filter response: %w", err)
	}
	if page.Error != "" {
		return nil, &FilterQueryError{Message: page.Error}
	}
	return &page, nil
}

func (c *Client) waitPageDelay(ctx context.Context) error {
	c.logger.Debug().Dur("delay", c.pageDelay).Msg("waiting before next filter page")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.pageDelay):
		return nil
	}
}

// GetIDTypes returns the current valid values for idType.
func (c *Client) GetIDTypes(ctx context.Context) ([]string, error) {
	return c.values(ctx, "idType")
}

// GetExchCodes returns the current valid values for exchCode.
func (c *Client) GetExchCodes(ctx context.Context) ([]string, error) {
	return c.values(ctx, "exchCode")
}

// GetMicCodes returns the current valid values for micCode.
func (c *Client) GetMicCodes(ctx context.Context) ([]string, error) {
	return c.values(ctx, "micCode")
}

// GetCurrencies returns the current valid values for currency.
func (c *Client) GetCurrencies(ctx context.Context) ([]string, error) {
	return c.values(ctx, "currency")
}

// GetMarketSecDes returns the current valid values for marketSecDes.
func (c *Client) GetMarketSecDes(ctx context.Context) ([]string, error) {
	return c.values(ctx, "marketSecDes")
}

// GetSecurityTypes returns the current valid values for securityType.
func (c *Client) GetSecurityTypes(ctx context.Context) ([]string, error) {
	return c.values(ctx, "securityType")
}

// GetSecurityTypes2 returns the current valid values for securityType2.
func (c *Client) GetSecurityTypes2(ctx context.Context) ([]string, error) {
	return c.values(ctx, "securityType2")
}

// GetStateCodes returns the current valid values for stateCode.
func (c *Client) GetStateCodes(ctx context.Context) ([]string, error) {
	return c.values(ctx, "stateCode")
}

func (c *Client) values(ctx context.Context, key string) ([]string, error) {
	body, err := c.get(ctx, "/mapping/values/"+key)
	if err != nil {
		return nil, err
	}

	var res valuesResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("unmarshal values response: %w", err)
	}
	return res.Values, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(data))
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// do performs one HTTP round trip. Any non-200 status becomes an *HTTPError
// carrying the status code and raw body; it is never retried here.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-OPENFIGI-APIKEY", c.apiKey)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("openfigi request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: respBody}
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("detail", httpErr.Detail()).
			Msg("openfigi request failed")
		return nil, httpErr
	}

	return respBody, nil
}
