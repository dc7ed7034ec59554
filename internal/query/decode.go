package query

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// comaSeparatedArray detects a comma followed by any run of operator symbols.
// The run may be empty, so any comma matches.
var comaSeparatedArray = regexp.MustCompile(`,[=!<>@]*`)

// HTTPQueryParamsToQuery parses flat parameters into a Query. Every key other
// than the reserved page, limit and sort keys is read as a filter. The first
// malformed filter aborts the call.
func (b *Builder) HTTPQueryParamsToQuery(params ParamMap, opts *DecodeOptions) (Query, error) {
	var o DecodeOptions
	if opts != nil {
		o = *opts
	}

	q := Query{
		Page:  intParam(params, b.opts.PageParamKey, o.DefaultPage),
		Limit: intParam(params, b.opts.LimitParamKey, o.DefaultLimit),
	}

	if p, ok := params[b.opts.SortParamKey]; ok && p.String() != "" {
		q.SortBy = parseSort(p.String())
	}

	for _, key := range params.Keys() {
		if b.reserved(key) {
			continue
		}
		p := params[key]

		var raw []string
		switch {
		case p.IsArray():
			raw = p.values
		case o.AllowComaSeparatedArrays && comaSeparatedArray.MatchString(p.String()):
			raw = strings.Split(p.String(), ",")
		default:
			raw = []string{p.String()}
		}

		for _, s := range raw {
			clause, err := ParseFilter(key, s)
			if err != nil {
				return Query{}, err
			}
			q.FilterBy = append(q.FilterBy, clause)
		}
	}

	return q, nil
}

// intParam reads a numeric parameter, falling back to def when the parameter
// is missing, zero, fractional, outside the int32 range or not a number.
func intParam(params ParamMap, key string, def int) int {
	p, ok := params[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(p.String()), 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 || f == 0 {
		return def
	}
	return int(f)
}

func parseSort(raw string) []SortClause {
	var out []SortClause
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			out = append(out, SortClause{Key: part[1:], Order: Desc})
			continue
		}
		out = append(out, SortClause{Key: part, Order: Asc})
	}
	return out
}

// ParseFilter reads one "<operator><value>" string. Without an operator the
// clause defaults to Equal, unless the string starts with a symbol, which is
// reported as an unknown operator. Leading whitespace is ignored; trailing
// whitespace belongs to the value.
func ParseFilter(key, raw string) (FilterClause, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	for _, op := range operatorsByLength {
		if strings.HasPrefix(s, string(op)) {
			return FilterClause{Key: key, Operator: op, Value: coerce(s[len(op):])}, nil
		}
	}

	if symbolPrefix(s) {
		return FilterClause{}, &OperatorError{Key: key, Input: raw}
	}
	return FilterClause{Key: key, Operator: Equal, Value: coerce(s)}, nil
}

// symbolPrefix reports whether s starts with anything other than an ASCII
// letter or digit.
func symbolPrefix(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9')
}

func coerce(s string) Value {
	switch strings.ToLower(s) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null":
		return Null()
	case "undefined":
		return Undefined()
	}
	if f, ok := parseNumber(s); ok {
		return Number(f)
	}
	return String(s)
}

// parseNumber accepts finite decimal numbers only; strconv also accepts
// "Inf", "NaN" and hex floats, which stay strings here.
func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(lower, "x") || strings.Contains(s, "_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
