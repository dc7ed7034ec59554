package query

import (
	"errors"
	"testing"
)

func TestFilterOperatorToSQLOperator(t *testing.T) {
	cases := []struct {
		name  string
		op    Operator
		value Value
		want  string
	}{
		{"equal null", Equal, Null(), "IS"},
		{"not equal null", NotEqual, Null(), "IS NOT"},
		{"equal", Equal, String("x"), "="},
		{"equal undefined", Equal, Undefined(), "="},
		{"not equal", NotEqual, Number(3), "<>"},
		{"contains", Contains, String("x"), "LIKE"},
		{"greater", GreaterThan, Number(1), ">"},
		{"less", LessThan, Number(1), "<"},
		{"greater or equal", GreaterThanOrEqual, Number(1), ">="},
		{"less or equal", LessThanOrEqual, Number(1), "<="},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FilterOperatorToSQLOperator(tc.op, tc.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestFilterOperatorToSQLOperatorUnknown(t *testing.T) {
	_, err := FilterOperatorToSQLOperator(Operator("=~"), String("x"))
	if !errors.Is(err, ErrUnrecognizedOperator) {
		t.Fatalf("expected ErrUnrecognizedOperator, got %v", err)
	}
	var opErr *OperatorError
	if !errors.As(err, &opErr) || opErr.Input != "=~" {
		t.Fatalf("expected OperatorError for =~, got %#v", err)
	}
}

func TestFilterOperatorToMongoOperatorNotImplemented(t *testing.T) {
	for _, op := range operatorsByLength {
		if _, err := FilterOperatorToMongoOperator(op, Null()); !errors.Is(err, ErrNotImplemented) {
			t.Fatalf("%s: expected ErrNotImplemented, got %v", op, err)
		}
	}
}

func TestOperatorsLongestFirst(t *testing.T) {
	for i, op := range operatorsByLength {
		if !op.Valid() {
			t.Fatalf("%q should be valid", op)
		}
		for _, later := range operatorsByLength[i+1:] {
			if len(later) > len(op) {
				t.Fatalf("%q listed after shorter %q", later, op)
			}
		}
	}
	if Operator("=").Valid() {
		t.Fatalf("= should not be a valid operator")
	}
}
