package openfigi

import (
	"fmt"
	"strings"
)

// FieldError reports a single request field that failed validation.
type FieldError struct {
	Field string
	Rule  string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field %s %s", e.Field, e.Rule)
}

// ValidationErrors aggregates every violation found during one validation
// pass over a request object. A request that fails validation is never sent
// to the service.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return "invalid request: " + strings.Join(msgs, "; ")
}

// HTTPError is any non-200 response from the OpenFIGI service. The client
// does not interpret it further; callers distinguish rate limiting (429)
// from server failure by the status code.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("openfigi: http error %d: %s", e.StatusCode, string(e.Body))
}

// Detail returns the documented meaning of the status code, if any.
func (e *HTTPError) Detail() string {
	return httpStatusMap[e.StatusCode]
}

// TooManyMappingJobsError is returned by Map, before any network call, when
// the submitted batch exceeds the tier's per-request job limit.
type TooManyMappingJobsError struct {
	Jobs  int
	Limit int
}

func (e *TooManyMappingJobsError) Error() string {
	return fmt.Sprintf("openfigi: %d mapping jobs submitted, the limit for this tier is %d per request", e.Jobs, e.Limit)
}

// FilterQueryError is a semantic error payload returned by the filter
// endpoint for a request the service accepted but could not run.
type FilterQueryError struct {
	Message string
}

func (e *FilterQueryError) Error() string {
	return "openfigi: filter query: " + e.Message
}
