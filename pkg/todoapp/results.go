package todoapp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/diwise/todo-app-client/pkg/todoapp/errors"
)

// Result is either a decoded value or a single error code. On the wire it is
// the backend's {"Ok": value} / {"Err": code} envelope.
type Result[T any] struct {
	value T
	code  errors.Code
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Err[T any](code errors.Code) Result[T] {
	return Result[T]{code: code}
}

func (r Result[T]) IsOk() bool {
	return r.code == ""
}

func (r Result[T]) Value() (T, bool) {
	return r.value, r.IsOk()
}

// Code returns the error code, or the empty code for an Ok result.
func (r Result[T]) Code() errors.Code {
	return r.code
}

// Unwrap converts the result into Go's (value, error) convention. The error
// matches the result's code with errors.Is.
func (r Result[T]) Unwrap() (T, error) {
	if !r.IsOk() {
		var zero T
		return zero, r.code
	}
	return r.value, nil
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if !r.IsOk() {
		return json.Marshal(struct {
			Err errors.Code `json:"Err"`
		}{r.code})
	}

	return json.Marshal(struct {
		Ok T `json:"Ok"`
	}{r.value})
}

func (r *Result[T]) UnmarshalJSON(data []byte) error {
	envelope := struct {
		Ok  json.RawMessage `json:"Ok"`
		Err *errors.Code    `json:"Err"`
	}{}

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return fmt.Errorf("failed to decode result envelope: %w", err)
	}

	if envelope.Err != nil {
		*r = Err[T](*envelope.Err)
		return nil
	}

	if envelope.Ok == nil {
		return fmt.Errorf("result envelope has neither Ok nor Err")
	}

	var value T
	if !bytes.Equal(envelope.Ok, []byte("null")) {
		err = json.Unmarshal(envelope.Ok, &value)
		if err != nil {
			return fmt.Errorf("failed to decode Ok value: %w", err)
		}
	}

	*r = Ok(value)
	return nil
}
