package errors

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

type Error struct {
	Code     int32             `json:"code"`
	Reason   string            `json:"reason"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Err      string            `json:"error,omitempty"`
	error
}

func (e *Error) Error() string {
	if e.error != nil {
		e.Err = e.error.Error()
	}
	err, _ := json.Marshal(e)
	return string(err)
}

func New(code int, reason, msg string) *Error {
	return &Error{
		Code:    int32(code),
		Reason:  reason,
		Message: msg,
	}
}

// Wrap annotates err with a message and a stack.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetErr extracts an *Error from err, falling back to the unknown error.
func GetErr(err error) *Error {
	e := &Error{
		Code:    UnknownCode,
		Reason:  UnknownReason,
		Message: UnknownReason,
		error:   err,
	}
	errors.As(err, &e)
	return e
}

func (e *Error) Unwrap() error {
	return e.error
}

func (e *Error) Is(err error) bool {
	if se := new(Error); errors.As(err, &se) {
		return se.Code == e.Code && se.Reason == e.Reason
	}
	return false
}

func (e *Error) WithError(cause error) *Error {
	err := clone(e)
	err.error = fmt.Errorf("%+v", cause)
	return err
}

func (e *Error) WithMetadata(md map[string]string) *Error {
	err := clone(e)
	err.Metadata = md
	return err
}

func (e *Error) WithMessage(msg string) *Error {
	err := clone(e)
	err.Message = msg
	return err
}

func Code(err error) int {
	if err == nil {
		return 0
	}
	return int(GetErr(err).Code)
}

func Reason(err error) string {
	if err == nil {
		return ""
	}
	return GetErr(err).Reason
}

func clone(err *Error) *Error {
	var md map[string]string
	if err.Metadata != nil {
		md = make(map[string]string, len(err.Metadata))
		for k, v := range err.Metadata {
			md[k] = v
		}
	}
	return &Error{
		Code:     err.Code,
		Reason:   err.Reason,
		Message:  err.Message,
		Metadata: md,
		error:    err.error,
	}
}
