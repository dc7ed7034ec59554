package query

// Operator is the wire token identifying the comparison of a filter clause.
type Operator string

const (
	Equal              Operator = "=="
	NotEqual           Operator = "!="
	GreaterThan        Operator = ">"
	LessThan           Operator = "<"
	GreaterThanOrEqual Operator = ">="
	LessThanOrEqual    Operator = "<="
	Contains           Operator = "@="
)

// operatorsByLength lists every token longest first so that ">=" is matched
// before ">".
var operatorsByLength = []Operator{
	Equal,
	NotEqual,
	GreaterThanOrEqual,
	LessThanOrEqual,
	Contains,
	GreaterThan,
	LessThan,
}

// Valid reports whether o is one of the known tokens.
func (o Operator) Valid() bool {
	for _, op := range operatorsByLength {
		if o == op {
			return true
		}
	}
	return false
}

func (o Operator) String() string { return string(o) }

// FilterOperatorToSQLOperator maps a filter operator to the SQL comparison used
// against a column. Equality with a null value becomes IS / IS NOT.
func FilterOperatorToSQLOperator(op Operator, value Value) (string, error) {
	switch op {
	case Equal:
		if value.IsNull() {
			return "IS", nil
		}
		return "=", nil
	case NotEqual:
		if value.IsNull() {
			return "IS NOT", nil
		}
		return "<>", nil
	case Contains:
		return "LIKE", nil
	case GreaterThan, LessThan, GreaterThanOrEqual, LessThanOrEqual:
		return string(op), nil
	default:
		return "", &OperatorError{Input: string(op)}
	}
}

// FilterOperatorToMongoOperator is not supported and always fails with
// ErrNotImplemented.
func FilterOperatorToMongoOperator(Operator, Value) (string, error) {
	return "", ErrNotImplemented
}
