package query

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedOperator = errors.New("unrecognized operator")
	ErrNotImplemented       = errors.New("not implemented")
)

// OperatorError reports an operator token that could not be recognized.
// Key is empty when the failure did not come from a query parameter.
type OperatorError struct {
	Key   string
	Input string
}

func (e *OperatorError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%v: %q", ErrUnrecognizedOperator, e.Input)
	}
	return fmt.Sprintf("%v in %s: %q", ErrUnrecognizedOperator, e.Key, e.Input)
}

func (e *OperatorError) Unwrap() error { return ErrUnrecognizedOperator }

func IsUnrecognizedOperator(err error) bool {
	return errors.Is(err, ErrUnrecognizedOperator)
}
