package query

import (
	"encoding/json"
	"net/url"
	"sort"
)

// ParamValue is one entry of a ParamMap: a scalar string or an array of
// strings.
type ParamValue struct {
	values []string
	array  bool
}

func Scalar(s string) ParamValue { return ParamValue{values: []string{s}} }

func Array(values ...string) ParamValue {
	return ParamValue{values: append([]string(nil), values...), array: true}
}

func (p ParamValue) IsArray() bool { return p.array }

// String returns the scalar value, or the first element of an array.
func (p ParamValue) String() string {
	if len(p.values) == 0 {
		return ""
	}
	return p.values[0]
}

func (p ParamValue) Strings() []string { return append([]string(nil), p.values...) }

func (p ParamValue) MarshalJSON() ([]byte, error) {
	if p.array {
		if p.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(p.values)
	}
	return json.Marshal(p.String())
}

func (p *ParamValue) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*p = Array(list...)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = Scalar(s)
	return nil
}

// ParamMap is the flat HTTP query-parameter form of a Query.
type ParamMap map[string]ParamValue

// FromValues converts parsed URL values. A key with a single value becomes a
// scalar, a key repeated in the query string becomes an array.
func FromValues(v url.Values) ParamMap {
	out := make(ParamMap, len(v))
	for key, values := range v {
		if len(values) == 1 {
			out[key] = Scalar(values[0])
			continue
		}
		out[key] = Array(values...)
	}
	return out
}

// Values converts the map to url.Values so the HTTP layer can encode it.
func (m ParamMap) Values() url.Values {
	out := make(url.Values, len(m))
	for key, p := range m {
		out[key] = p.Strings()
	}
	return out
}

// Keys returns the parameter names in lexical order.
func (m ParamMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
