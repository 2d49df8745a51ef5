package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "worthit/internal/platform/errors"
	phttp "worthit/internal/platform/net/http"
)

type computeReq struct {
	Automation  float64 `json:"automation_time"`
	Repetitions *int    `json:"repetitions" validate:"required,min=1"`
}

func serve(h Handler, method, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(method, "/worth/compute", strings.NewReader(body)))
	return rec
}

func TestCall(t *testing.T) {
	tests := []struct {
		name string
		h    Handler
		code int
		want string
	}{
		{"plain value wrapped", Call(func(*http.Request) (any, error) {
			return map[string]bool{"is_worth": true}, nil
		}), http.StatusOK, `"is_worth":true`},
		{"response passes through", Call(func(*http.Request) (any, error) {
			return phttp.NoContent(), nil
		}), http.StatusNoContent, ""},
		{"error mapped", Call(func(*http.Request) (any, error) {
			return nil, errors.New("nah")
		}), http.StatusInternalServerError, `"status_code":500`},
		{"not found", Call(func(*http.Request) (any, error) {
			return nil, perr.New(perr.ErrorCodeNotFound, "no result")
		}), http.StatusNotFound, "no result"},
	}
	for _, tc := range tests {
		rec := serve(tc.h, http.MethodGet, "")
		if rec.Code != tc.code || !strings.Contains(rec.Body.String(), tc.want) {
			t.Fatalf("%s: %d %q", tc.name, rec.Code, rec.Body.String())
		}
	}
}

func TestJSON(t *testing.T) {
	echo := JSON(func(_ *http.Request, in computeReq) (any, error) {
		if in.Automation < 0 {
			return nil, perr.New(perr.ErrorCodeInvalidArgument, "negative automation time")
		}
		if *in.Repetitions == 1 {
			return phttp.Response{Status: http.StatusAccepted, Body: "single run"}, nil
		}
		return map[string]any{"repetitions": *in.Repetitions}, nil
	})

	tests := []struct {
		name, body string
		code       int
		want       string
	}{
		{"decoded", `{"automation_time":60,"repetitions":50}`, http.StatusOK, `"repetitions":50`},
		{"response passes through", `{"automation_time":60,"repetitions":1}`, http.StatusAccepted, "single run"},
		{"malformed", `{`, http.StatusBadRequest, `"code":6`},
		{"unknown field", `{"repetitions":2,"x":1}`, http.StatusBadRequest, `"code":6`},
		{"validation", `{"repetitions":0}`, http.StatusBadRequest, "repetitions must be at least 1"},
		{"handler error", `{"automation_time":-1,"repetitions":2}`, http.StatusUnprocessableEntity, "negative automation time"},
	}
	for _, tc := range tests {
		rec := serve(echo, http.MethodPost, tc.body)
		if rec.Code != tc.code || !strings.Contains(rec.Body.String(), tc.want) {
			t.Fatalf("%s: %d %s", tc.name, rec.Code, rec.Body.String())
		}
	}
}
