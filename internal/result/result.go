// Package result holds the envelope every service operation returns.
//
// A Result is immutable once built. Success results carry a list-wrapped
// payload; failure results carry only a kind and a message.
package result

import (
	"encoding/json"
	"net/http"
)

// Kind classifies the outcome of an operation.
type Kind int

const (
	KindOK Kind = iota
	KindCreated
	KindInvalid
	KindNotFound
	KindConflict
	KindInternal
)

var kindStatus = map[Kind]int{
	KindOK:       http.StatusOK,
	KindCreated:  http.StatusCreated,
	KindInvalid:  http.StatusBadRequest,
	KindNotFound: http.StatusNotFound,
	KindConflict: http.StatusConflict,
	KindInternal: http.StatusInternalServerError,
}

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindCreated:
		return "created"
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Result is the status/message/data envelope.
type Result[T any] struct {
	kind    Kind
	message string
	data    []T
}

// OK builds a successful result.
func OK[T any](message string, data ...T) Result[T] {
	return success(KindOK, message, data)
}

// Created builds a successful result for a newly created resource.
func Created[T any](message string, data ...T) Result[T] {
	return success(KindCreated, message, data)
}

// Invalid reports a request that was rejected before reaching storage.
func Invalid[T any](message string) Result[T] {
	return Result[T]{kind: KindInvalid, message: message}
}

// NotFound reports a missing record.
func NotFound[T any](message string) Result[T] {
	return Result[T]{kind: KindNotFound, message: message}
}

// Conflict reports a uniqueness violation.
func Conflict[T any](message string) Result[T] {
	return Result[T]{kind: KindConflict, message: message}
}

// Internal reports any other failure using the error's message.
func Internal[T any](err error) Result[T] {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return Result[T]{kind: KindInternal, message: msg}
}

func success[T any](kind Kind, message string, data []T) Result[T] {
	r := Result[T]{kind: kind, message: message, data: make([]T, len(data))}
	copy(r.data, data)
	return r
}

// Kind returns the outcome classification.
func (r Result[T]) Kind() Kind { return r.kind }

// Status returns the HTTP status code matching the kind.
func (r Result[T]) Status() int {
	if s, ok := kindStatus[r.kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Message returns the human readable message.
func (r Result[T]) Message() string { return r.message }

// Succeeded reports whether the result is OK or Created.
func (r Result[T]) Succeeded() bool {
	return r.kind == KindOK || r.kind == KindCreated
}

// Data returns a copy of the payload. It is nil for failures.
func (r Result[T]) Data() []T {
	if r.data == nil {
		return nil
	}
	out := make([]T, len(r.data))
	copy(out, r.data)
	return out
}

type envelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    []T    `json:"data,omitempty"`
}

// MarshalJSON renders {"status","message","data"}. Successful results always
// emit data, even when empty.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Succeeded() {
		data := r.data
		if data == nil {
			data = []T{}
		}
		return json.Marshal(struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
			Data    []T    `json:"data"`
		}{r.Status(), r.message, data})
	}
	return json.Marshal(envelope[T]{Status: r.Status(), Message: r.message})
}
