package client

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/todo-app-client/pkg/todoapp"
	"github.com/diwise/todo-app-client/pkg/todoapp/errors"
)

// Call encodes req, sends it to the endpoint of op and decodes the Ok value
// into Resp. Every failure is reported as an Err result, never as a panic or
// a separate error. A missing record in the response of a single record
// operation is reported as UNKNOWN, a missing list as an empty one.
func Call[Req, Resp any](ctx context.Context, c TodoAppClient, op Operation, req Req, options ...CallOption) todoapp.Result[Resp] {
	logger := logging.GetFromContext(ctx)

	body, err := json.Marshal(req)
	if err != nil {
		logger.Error("failed to marshal request", "operation", op.Name, "err", err.Error())
		return todoapp.Err[Resp](errors.Unknown)
	}

	raw := c.Raw(ctx, op, body, options...)
	if !raw.IsOk() {
		return todoapp.Err[Resp](raw.Code())
	}

	var resp Resp

	value, _ := raw.Value()
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		if !op.Many {
			logger.Error("response has no record", "operation", op.Name)
			return todoapp.Err[Resp](errors.Unknown)
		}
		return todoapp.Ok(resp)
	}

	err = json.Unmarshal(value, &resp)
	if err != nil {
		logger.Error("failed to unmarshal response", "operation", op.Name, "err", err.Error())
		return todoapp.Err[Resp](errors.Unknown)
	}

	return todoapp.Ok(resp)
}

func one[T any](r todoapp.Result[T]) (*T, error) {
	value, err := r.Unwrap()
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func many[T any](r todoapp.Result[[]T]) ([]T, error) {
	return r.Unwrap()
}
