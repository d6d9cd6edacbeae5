package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Code is one of the closed set of failure kinds reported by the todo app
// backend, plus the two kinds (NETWORK and UNKNOWN) synthesized by the client.
type Code string

const (
	NoCapability                   Code = "NO_CAPABILITY"
	GoalIntentNonexistent          Code = "GOAL_INTENT_NONEXISTENT"
	GoalNonexistent                Code = "GOAL_NONEXISTENT"
	GoalEventNonexistent           Code = "GOAL_EVENT_NONEXISTENT"
	GoalTemplateNonexistent        Code = "GOAL_TEMPLATE_NONEXISTENT"
	ExternalEventNonexistent       Code = "EXTERNAL_EVENT_NONEXISTENT"
	NamedEntityNonexistent         Code = "NAMED_ENTITY_NONEXISTENT"
	UserGeneratedCodeNonexistent   Code = "USER_GENERATED_CODE_NONEXISTENT"
	TimeUtilityFunctionNonexistent Code = "TIME_UTILITY_FUNCTION_NONEXISTENT"
	TimeUtilityFunctionNotValid    Code = "TIME_UTILITY_FUNCTION_NOT_VALID"
	NegativeStartTime              Code = "NEGATIVE_START_TIME"
	NegativeDuration               Code = "NEGATIVE_DURATION"
	GoalFormsCycle                 Code = "GOAL_FORMS_CYCLE"
	DecodeError                    Code = "DECODE_ERROR"
	InternalServerError            Code = "INTERNAL_SERVER_ERROR"
	MethodNotAllowed               Code = "METHOD_NOT_ALLOWED"
	Unauthorized                   Code = "UNAUTHORIZED"
	BadRequest                     Code = "BAD_REQUEST"
	NotFound                       Code = "NOT_FOUND"
	Network                        Code = "NETWORK"
	Unknown                        Code = "UNKNOWN"
)

// Codes lists every member of the enumeration in wire order.
var Codes = []Code{
	NoCapability,
	GoalIntentNonexistent,
	GoalNonexistent,
	GoalEventNonexistent,
	GoalTemplateNonexistent,
	ExternalEventNonexistent,
	NamedEntityNonexistent,
	UserGeneratedCodeNonexistent,
	TimeUtilityFunctionNonexistent,
	TimeUtilityFunctionNotValid,
	NegativeStartTime,
	NegativeDuration,
	GoalFormsCycle,
	DecodeError,
	InternalServerError,
	MethodNotAllowed,
	Unauthorized,
	BadRequest,
	NotFound,
	Network,
	Unknown,
}

func (c Code) Error() string { return string(c) }

func (c Code) IsValid() bool {
	for idx := range Codes {
		if Codes[idx] == c {
			return true
		}
	}
	return false
}

// UnmarshalJSON maps any string outside the closed set to Unknown.
func (c *Code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*c = Code(s)
	if !c.IsValid() {
		*c = Unknown
	}

	return nil
}

// Parse returns the code named by s, or Unknown and false if s is not a member.
func Parse(s string) (Code, bool) {
	c := Code(s)
	if !c.IsValid() {
		return Unknown, false
	}
	return c, true
}

type codeError struct {
	msg  string
	code Code
}

func (e codeError) Error() string        { return e.msg }
func (e codeError) Is(target error) bool { return target == e.code }
func (e codeError) Code() Code           { return e.code }

// New returns an error that reports msg and matches code with errors.Is.
func New(code Code, msg string) error {
	return &codeError{
		msg:  msg,
		code: code,
	}
}

// NewNetworkError wraps a transport failure as a NETWORK error.
func NewNetworkError(err error) error {
	return New(Network, fmt.Sprintf("%s: %s", Network, err.Error()))
}

// CodeOf extracts the code carried by err. Errors without a code report Unknown.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}

	var c Code
	if errors.As(err, &c) {
		return c
	}

	var coded interface{ Code() Code }
	if errors.As(err, &coded) {
		return coded.Code()
	}

	return Unknown
}
