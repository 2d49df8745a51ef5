// Package http writes every API reply, success or failure, in one JSON envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "worthit/internal/platform/errors"
	lumnet "worthit/internal/platform/net"
)

// Envelope is the body of every JSON reply; Data on success, Code/Error/Field on failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(status int, reqID string) Envelope {
	return Envelope{StatusCode: status, Status: stdhttp.StatusText(status), RequestID: reqID}
}

// JSON writes v with status as utf-8 JSON
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorEnvelope is the status and body err is answered with
func ErrorEnvelope(err error, reqID string) (int, Envelope) {
	status := perr.HTTPStatus(err)
	wire := perr.WireFrom(err)
	env := envelope(status, reqID)
	env.Code, env.Error, env.Field = wire.Code, wire.Message, wire.Field
	return status, env
}

// RespondError answers r with err's envelope
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := ErrorEnvelope(err, lumnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// Response is what return-style handlers produce; an error Body becomes an error reply
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 carrying data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent is an empty 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error replies with err's mapped status
func Error(err error) Response { return Response{Body: err} }

// Handle serves the Response h returns
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}
	switch resp.Status {
	case 0:
		resp.Status = stdhttp.StatusOK
	case stdhttp.StatusNoContent:
		w.WriteHeader(resp.Status)
		return
	}
	env := envelope(resp.Status, lumnet.RequestID(r.Context()))
	env.Data = resp.Body
	JSON(w, resp.Status, env)
}
