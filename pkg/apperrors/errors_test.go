package apperrors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err  *Error
		code int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{BusinessRule("rule broken"), http.StatusBadRequest},
		{Unauthorized("who are you"), http.StatusUnauthorized},
		{NotFound("gone"), http.StatusNotFound},
		{Unexpected("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if tc.err.StatusCode != tc.code {
			t.Errorf("%q: status = %d, want %d", tc.err.Message, tc.err.StatusCode, tc.code)
		}
		if tc.err.Error() != tc.err.Message {
			t.Errorf("Error() = %q, want %q", tc.err.Error(), tc.err.Message)
		}
	}
}

func TestFromUnwrapsChain(t *testing.T) {
	base := NotFound("Product not found")
	wrapped := errors.Wrap(base, "query product")

	appErr, found := From(wrapped)
	if !found {
		t.Fatal("expected to find app error in chain")
	}
	if appErr.StatusCode != http.StatusNotFound || appErr.Message != "Product not found" {
		t.Errorf("unexpected extraction: %+v", appErr)
	}
}

func TestFromPlainError(t *testing.T) {
	if _, found := From(errors.New("plain")); found {
		t.Error("plain errors must not classify")
	}
	if _, found := From(nil); found {
		t.Error("nil must not classify")
	}
}
