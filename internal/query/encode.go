package query

import (
	"strconv"
	"strings"
)

// QueryToHTTPQueryParams renders q as flat parameters. A zero page or limit is
// not emitted. Filter clauses are appended per key in input order as
// "<operator><value>".
func (b *Builder) QueryToHTTPQueryParams(q Query) ParamMap {
	params := ParamMap{}

	if q.Page != 0 {
		params[b.opts.PageParamKey] = Scalar(strconv.Itoa(q.Page))
	}
	if q.Limit != 0 {
		params[b.opts.LimitParamKey] = Scalar(strconv.Itoa(q.Limit))
	}

	if len(q.SortBy) > 0 {
		keys := make([]string, 0, len(q.SortBy))
		for _, s := range q.SortBy {
			if s.Order == Desc {
				keys = append(keys, "-"+s.Key)
				continue
			}
			keys = append(keys, s.Key)
		}
		params[b.opts.SortParamKey] = Scalar(strings.Join(keys, ","))
	}

	for _, f := range q.FilterBy {
		p := params[f.Key]
		p.array = true
		p.values = append(p.values, string(f.Operator)+f.Value.String())
		params[f.Key] = p
	}

	return params
}
