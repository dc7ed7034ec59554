package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorMessage(t *testing.T) {
	cause := errors.New("unrecognized operator")
	cases := []struct {
		err  ValidationError
		want string
	}{
		{ValidationError{Field: "color", Msg: "unknown filter"}, "color: unknown filter"},
		{ValidationError{Field: "color", Err: cause}, "color: unrecognized operator"},
		{ValidationError{Msg: "bad"}, "bad"},
		{ValidationError{Field: "age"}, "invalid age"},
		{ValidationError{}, "validation error"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("got %q want %q", got, tc.want)
		}
	}
}

func TestErrorHelpersUnwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("list: %w", ValidationError{Field: "x", Err: cause})
	if !IsValidation(wrapped) {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if IsNotFound(wrapped) || IsInternal(wrapped) || IsUnauthorized(wrapped) {
		t.Fatalf("unexpected classification")
	}
	if !IsInternal(InternalError{Err: cause}) || !IsUnauthorized(UnauthorizedError{}) || !IsNotFound(NotFoundError{Resource: "vehicle"}) {
		t.Fatalf("helpers should classify their own types")
	}
}
