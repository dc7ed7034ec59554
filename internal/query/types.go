package query

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type SortOrder string

const (
	Asc  SortOrder = "ASC"
	Desc SortOrder = "DESC"
)

type SortClause struct {
	Key   string    `json:"key"`
	Order SortOrder `json:"order,omitempty"`
}

// ValueKind tags the dynamic type carried by a Value.
type ValueKind uint8

const (
	KindUndefined ValueKind = iota
	KindNull
	KindBool
	KindNumber
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is the operand of a filter clause. The zero Value is undefined.
type Value struct {
	kind ValueKind
	b    bool
	num  float64
	str  string
}

func Undefined() Value { return Value{} }
func Null() Value { return Value{kind: KindNull} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }
func String(s string) Value { return Value{kind: KindString, str: s} }
func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// Any returns the Go representation: nil for null and undefined, bool,
// float64 or string otherwise.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	default:
		return nil
	}
}

// String renders the value the way it is concatenated into a wire filter, so
// null becomes "null" and undefined becomes "undefined".
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	default:
		return "undefined"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return nil, fmt.Errorf("query: cannot encode number %v", v.num)
		}
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.str)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Null()
	case bool:
		*v = Bool(x)
	case float64:
		*v = Number(x)
	case string:
		*v = String(x)
	default:
		return fmt.Errorf("query: unsupported filter value %s", string(data))
	}
	return nil
}

type FilterClause struct {
	Key      string
	Operator Operator
	Value    Value
}

type filterClauseJSON struct {
	Key      string   `json:"key"`
	Operator Operator `json:"operator"`
	Value    *Value   `json:"value,omitempty"`
}

// MarshalJSON omits the value of an undefined operand.
func (c FilterClause) MarshalJSON() ([]byte, error) {
	out := filterClauseJSON{Key: c.Key, Operator: c.Operator}
	if !c.Value.IsUndefined() {
		v := c.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

func (c *FilterClause) UnmarshalJSON(data []byte) error {
	var in struct {
		Key      string          `json:"key"`
		Operator Operator        `json:"operator"`
		Value    json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	c.Key = in.Key
	c.Operator = in.Operator
	c.Value = Undefined()
	if len(in.Value) > 0 {
		return json.Unmarshal(in.Value, &c.Value)
	}
	return nil
}

// Query is the structured form of a listing request. Page and Limit are
// absent when zero.
type Query struct {
	Page     int            `json:"page,omitempty"`
	Limit    int            `json:"limit,omitempty"`
	SortBy   []SortClause   `json:"sortBy,omitempty"`
	FilterBy []FilterClause `json:"filterBy,omitempty"`
}
