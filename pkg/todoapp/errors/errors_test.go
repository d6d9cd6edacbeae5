package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestUnlistedCodeDecodesAsUnknown(t *testing.T) {
	is := is.New(t)

	var c Code
	err := json.Unmarshal([]byte(`"RATE_LIMITED"`), &c)

	is.NoErr(err)
	is.Equal(c, Unknown)
}

func TestListedCodeDecodesAsItself(t *testing.T) {
	is := is.New(t)

	var c Code
	err := json.Unmarshal([]byte(`"GOAL_FORMS_CYCLE"`), &c)

	is.NoErr(err)
	is.Equal(c, GoalFormsCycle)
}

func TestCodeOf(t *testing.T) {
	is := is.New(t)

	is.Equal(CodeOf(nil), Code(""))
	is.Equal(CodeOf(NotFound), NotFound)
	is.Equal(CodeOf(fmt.Errorf("wrapped: %w", BadRequest)), BadRequest)
	is.Equal(CodeOf(NewNetworkError(fmt.Errorf("dial tcp: refused"))), Network)
	is.Equal(CodeOf(fmt.Errorf("plain")), Unknown)
}

func TestCodedErrorsMatchTheirCode(t *testing.T) {
	is := is.New(t)

	err := New(TimeUtilityFunctionNotValid, "utils and start times differ in length")

	is.True(errors.Is(err, TimeUtilityFunctionNotValid))
	is.True(!errors.Is(err, Unknown))
	is.Equal(err.Error(), "utils and start times differ in length")
}

func TestParse(t *testing.T) {
	is := is.New(t)

	c, ok := Parse("METHOD_NOT_ALLOWED")
	is.True(ok)
	is.Equal(c, MethodNotAllowed)

	c, ok = Parse("nope")
	is.True(!ok)
	is.Equal(c, Unknown)
}

func TestCodesAreComplete(t *testing.T) {
	is := is.New(t)
	is.Equal(len(Codes), 21)
}
