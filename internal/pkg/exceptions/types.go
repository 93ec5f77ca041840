package exceptions

import (
	"errors"
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	Kind          string   `json:"kind"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"dev_message,omitempty"`
	Location      Location `json:"location,omitempty"`
	Err           error    `json:"-"`
}

type Location struct {
	File         string `json:"file,omitempty"`
	Line         int    `json:"line,omitempty"`
	FunctionName string `json:"function_name,omitempty"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the caller of the constructor var as the error location.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          KindForStatus(statusCode),
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
		Err:           err,
	}
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          KindForStatus(statusCode),
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

// KindForStatus maps an HTTP status onto the four error kinds the browser understands.
func KindForStatus(statusCode int) string {
	switch statusCode {
	case constvars.StatusBadRequest, constvars.StatusUnprocessableEntity,
		constvars.StatusUnauthorized, constvars.StatusForbidden, constvars.StatusNotFound:
		return constvars.ErrorKindValidation
	case constvars.StatusConflict:
		return constvars.ErrorKindAvailabilityConflict
	case constvars.StatusBadGateway, constvars.StatusServiceUnavailable, constvars.StatusGatewayTimeout:
		return constvars.ErrorKindNetwork
	default:
		return constvars.ErrorKindUnknown
	}
}

// KindOf returns the kind of err, UnknownError when err is not a *CustomError.
func KindOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return constvars.ErrorKindUnknown
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
