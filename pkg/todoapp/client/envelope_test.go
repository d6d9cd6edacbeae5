package client

import (
	"net/http"
	"testing"

	todoerrors "github.com/diwise/todo-app-client/pkg/todoapp/errors"
	"github.com/matryer/is"
)

func TestDecodeStatusSuccessKeepsBody(t *testing.T) {
	is := is.New(t)

	result := DecodeEnvelope(DecodeStatus, http.StatusCreated, []byte(`{"goalId":1}`))

	value, ok := result.Value()
	is.True(ok)
	is.Equal(string(value), `{"goalId":1}`)
}

func TestDecodeStatusEmptySuccessIsNull(t *testing.T) {
	is := is.New(t)

	result := DecodeEnvelope(DecodeStatus, http.StatusNoContent, nil)

	value, ok := result.Value()
	is.True(ok)
	is.Equal(string(value), "null")
}

func TestDecodeStatusFailureReadsCode(t *testing.T) {
	is := is.New(t)

	result := DecodeEnvelope(DecodeStatus, http.StatusUnauthorized, []byte(`"UNAUTHORIZED"`))

	is.Equal(result.Code(), todoerrors.Unauthorized)
}

func TestDecodeStatusFailureAcceptsWrappedCode(t *testing.T) {
	is := is.New(t)

	result := DecodeEnvelope(DecodeStatus, http.StatusBadRequest, []byte(`{"Err":"NEGATIVE_DURATION"}`))

	is.Equal(result.Code(), todoerrors.NegativeDuration)
}

func TestDecodeStatusFailureWithUnlistedCodeIsUnknown(t *testing.T) {
	is := is.New(t)

	result := DecodeEnvelope(DecodeStatus, http.StatusBadRequest, []byte(`"SOMETHING_NEW"`))

	is.Equal(result.Code(), todoerrors.Unknown)
}

func TestDecodeStatusInvalidSuccessBodyIsUnknown(t *testing.T) {
	is := is.New(t)

	result := DecodeEnvelope(DecodeStatus, http.StatusOK, []byte(`not json`))

	is.Equal(result.Code(), todoerrors.Unknown)
}

func TestDecodeTaggedIgnoresStatus(t *testing.T) {
	is := is.New(t)

	ok := DecodeEnvelope(DecodeTagged, http.StatusInternalServerError, []byte(`{"Ok":[1,2]}`))
	value, isOk := ok.Value()
	is.True(isOk)
	is.Equal(string(value), "[1,2]")

	failed := DecodeEnvelope(DecodeTagged, http.StatusOK, []byte(`{"Err":"NO_CAPABILITY"}`))
	is.Equal(failed.Code(), todoerrors.NoCapability)
}

func TestDecodeTaggedWithoutEnvelopeIsUnknown(t *testing.T) {
	is := is.New(t)

	result := DecodeEnvelope(DecodeTagged, http.StatusOK, []byte(`{"goalId":1}`))

	is.Equal(result.Code(), todoerrors.Unknown)
}
