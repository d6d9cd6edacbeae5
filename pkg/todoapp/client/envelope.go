package client

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/diwise/todo-app-client/pkg/todoapp"
	"github.com/diwise/todo-app-client/pkg/todoapp/errors"
)

// Decoding selects how a response is turned into a result.
type Decoding string

const (
	// DecodeTagged expects the backend to wrap every response body in an
	// {"Ok": ...} or {"Err": ...} envelope, whatever the status code.
	DecodeTagged Decoding = "tagged"
	// DecodeStatus treats a 2xx body as the value and any other body as
	// the error code.
	DecodeStatus Decoding = "status"
)

func (d Decoding) IsValid() bool {
	return d == DecodeTagged || d == DecodeStatus
}

// DecodeEnvelope converts a completed HTTP exchange into a result holding the
// undecoded Ok value. Bodies that cannot be interpreted yield UNKNOWN.
func DecodeEnvelope(decoding Decoding, statusCode int, body []byte) todoapp.Result[json.RawMessage] {
	if decoding == DecodeStatus {
		return decodeByStatus(statusCode, body)
	}

	var result todoapp.Result[json.RawMessage]
	err := json.Unmarshal(body, &result)
	if err != nil {
		return todoapp.Err[json.RawMessage](errors.Unknown)
	}

	return result
}

func decodeByStatus(statusCode int, body []byte) todoapp.Result[json.RawMessage] {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		body = bytes.TrimSpace(body)
		if len(body) == 0 {
			return todoapp.Ok(json.RawMessage("null"))
		}

		if !json.Valid(body) {
			return todoapp.Err[json.RawMessage](errors.Unknown)
		}

		return todoapp.Ok(json.RawMessage(body))
	}

	var code errors.Code
	if err := json.Unmarshal(body, &code); err == nil {
		return todoapp.Err[json.RawMessage](code)
	}

	// some deployments wrap their errors even when they signal them by status
	var result todoapp.Result[json.RawMessage]
	if err := json.Unmarshal(body, &result); err == nil && !result.IsOk() {
		return result
	}

	return todoapp.Err[json.RawMessage](errors.Unknown)
}
