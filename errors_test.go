package shiftgen

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewError(t *testing.T) {
	err := NewError(CodeNotFound, "type not found")
	if err.Code != CodeNotFound {
		t.Errorf("Code = %q, want %q", err.Code, CodeNotFound)
	}
	if err.Error() != "not_found: type not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestErrorf_WrapsSentinel(t *testing.T) {
	err := Errorf(CodeConflict, "type %q already registered: %s", "testing.Nested1", ErrDuplicateType)
	if !errors.Is(err, ErrDuplicateType) {
		t.Error("expected errors.Is to match ErrDuplicateType through the envelope")
	}
	if errors.Is(err, ErrModeConflict) {
		t.Error("did not expect ErrModeConflict match")
	}
}

func TestError_WithDetail(t *testing.T) {
	base := NewError(CodeInvalidArgument, "bad schema")
	detailed := base.WithDetail("field", "name")

	if base.Details != nil {
		t.Error("WithDetail must not mutate the original error")
	}
	if detailed.Details["field"] != "name" {
		t.Errorf("Details = %v", detailed.Details)
	}
}

func TestFromError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"envelope passthrough", NewError(CodeMethodNotAllowed, "nope"), CodeMethodNotAllowed},
		{"unknown type", fmt.Errorf("lookup: %w", ErrUnknownType), CodeNotFound},
		{"duplicate", fmt.Errorf("register: %w", ErrDuplicateType), CodeConflict},
		{"mode conflict", fmt.Errorf("register: %w", ErrModeConflict), CodeConflict},
		{"opaque", errors.New("boom"), CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromError(tc.in)
			if tc.in == nil {
				if got != nil {
					t.Errorf("FromError(nil) = %v, want nil", got)
				}
				return
			}
			if got.Code != tc.want {
				t.Errorf("FromError(%v).Code = %q, want %q", tc.in, got.Code, tc.want)
			}
		})
	}
}

func TestErrorCode_HTTPStatus(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{CodeConflict, http.StatusConflict},
		{CodeInternal, http.StatusInternalServerError},
		{ErrorCode("bogus"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tc.code, got, tc.want)
		}
	}
}
