package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodes(t *testing.T) {
	for _, tc := range []struct {
		code   ErrorCode
		name   string
		status int
	}{
		{ErrorCodeUnknown, "unknown", http.StatusInternalServerError},
		{ErrorCodePanic, "panic", http.StatusInternalServerError},
		{ErrorCodeUnavailable, "unavailable", http.StatusServiceUnavailable},
		{ErrorCodeTooManyRequests, "too_many_requests", http.StatusTooManyRequests},
		{ErrorCodeInvalidArgument, "invalid_argument", http.StatusUnprocessableEntity},
		{ErrorCodeValidation, "validation", http.StatusBadRequest},
		{ErrorCodeJSON, "json", http.StatusBadRequest},
		{ErrorCodeNotFound, "not_found", http.StatusNotFound},
		{42, "code(42)", http.StatusInternalServerError},
	} {
		if got := tc.code.String(); got != tc.name {
			t.Fatalf("%d.String() = %q, want %q", uint16(tc.code), got, tc.name)
		}
		if got := HTTPStatusCode(tc.code); got != tc.status {
			t.Fatalf("HTTPStatusCode(%s) = %d, want %d", tc.code, got, tc.status)
		}
	}
	// wire numbers are part of the API
	if ErrorCodeInvalidArgument != 4 || ErrorCodeValidation != 5 || ErrorCodeNotFound != 7 {
		t.Fatal("error codes renumbered")
	}
}

func TestError_RenderAndUnwrap(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	cause := stderrs.New("strconv: bad digit")
	err := Wrapf(cause, ErrorCodeValidation, "time %q is not a number", "1h")
	if got, want := err.Error(), `time "1h" is not a number: strconv: bad digit`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !stderrs.Is(err, cause) {
		t.Fatal("cause lost")
	}
	if got := Newf(ErrorCodeJSON, "offset %d", 3).Error(); got != "offset 3" {
		t.Fatalf("Newf = %q", got)
	}

	outer := fmt.Errorf("share: %w", err)
	if e, ok := As(outer); !ok || e.Code() != ErrorCodeValidation {
		t.Fatal("As must see through %w")
	}
	if _, ok := As(cause); ok || CodeOf(cause) != ErrorCodeUnknown {
		t.Fatal("foreign errors are Unknown")
	}
	if CodeOf(JSONErrf("x")) != ErrorCodeJSON || CodeOf(PanicErrf("x")) != ErrorCodePanic {
		t.Fatal("sugar codes")
	}
}

func TestWithField_CopiesAndPassesThroughForeign(t *testing.T) {
	orig := New(ErrorCodeValidation, "Must be a number")
	named := WithField(orig, "repetitions")
	if e, _ := As(named); e.Field() != "repetitions" {
		t.Fatalf("field = %q", e.Field())
	}
	if e, _ := As(orig); e.Field() != "" {
		t.Fatal("original was mutated")
	}
	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain {
		t.Fatal("foreign error should come back untouched")
	}
}

func TestWireFrom(t *testing.T) {
	cause := stderrs.New("root")
	for _, tc := range []struct {
		name   string
		err    error
		want   Wire
		status int
	}{
		{"nil", nil, Wire{}, http.StatusInternalServerError},
		{"foreign", cause, Wire{Code: ErrorCodeUnknown, Message: "root"}, http.StatusInternalServerError},
		{
			"ours hides cause",
			WithField(Wrapf(cause, ErrorCodeValidation, "invalid base_url"), "base_url"),
			Wire{Code: ErrorCodeValidation, Message: "invalid base_url", Field: "base_url"},
			http.StatusBadRequest,
		},
		{"not computable", New(ErrorCodeInvalidArgument, "no gain"), Wire{Code: ErrorCodeInvalidArgument, Message: "no gain"}, http.StatusUnprocessableEntity},
	} {
		if got := WireFrom(tc.err); got != tc.want {
			t.Fatalf("%s: WireFrom = %+v, want %+v", tc.name, got, tc.want)
		}
		if tc.err != nil && HTTPStatus(tc.err) != tc.status {
			t.Fatalf("%s: HTTPStatus = %d, want %d", tc.name, HTTPStatus(tc.err), tc.status)
		}
	}
}
