package services

import (
	"errors"
	"net/url"

	"querycodec/internal/domain"
	"querycodec/internal/query"
)

// QueryService translates between request query strings and query.Query.
type QueryService struct {
	Builder *query.Builder
	Decode  query.DecodeOptions
}

func (s QueryService) builder() *query.Builder {
	if s.Builder != nil {
		return s.Builder
	}
	return query.NewBuilder(nil)
}

// Parse decodes URL values. An unrecognized operator becomes a
// domain.ValidationError on the offending parameter.
func (s QueryService) Parse(values url.Values) (query.Query, error) {
	opts := s.Decode
	q, err := s.builder().HTTPQueryParamsToQuery(query.FromValues(values), &opts)
	if err != nil {
		var opErr *query.OperatorError
		if errors.As(err, &opErr) {
			return query.Query{}, domain.ValidationError{Field: opErr.Key, Err: err}
		}
		return query.Query{}, domain.ValidationError{Err: err}
	}
	return q, nil
}

// Format encodes q into parameters and the percent-encoded query string.
func (s QueryService) Format(q query.Query) (query.ParamMap, string) {
	params := s.builder().QueryToHTTPQueryParams(q)
	return params, params.Values().Encode()
}
