// Package errs implements the gateway's error taxonomy: every fault that can
// surface from a handler is one of validation, backend, or internal, and each
// variant knows its own HTTP status. Handlers never format status codes
// themselves - they hand an error to respondError in internal/handlers and
// let it decide.
package errs

import (
	"fmt"
	"net/http"
)

// GatewayError is the sum type for every fault the gateway can raise.
// Exactly one of ValidationError, BackendError, or InternalError.
type GatewayError interface {
	error
	StatusCode() int
}

// ValidationError reports a malformed or out-of-range request parameter.
type ValidationError struct {
	Kind    string // e.g. "lon", "lat", "bbox", "layer", "lang", "location_bias"
	Message string
}

func (e *ValidationError) Error() string   { return e.Message }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

func Lon(value float32) *ValidationError {
	return &ValidationError{Kind: "lon", Message: fmt.Sprintf(
		"invalid lon %v. Must be in the range [-180, 180]", value)}
}

func Lat(value float32) *ValidationError {
	return &ValidationError{Kind: "lat", Message: fmt.Sprintf(
		"invalid lat %v. Must be in the range [-90, 90]", value)}
}

func Bbox(value [4]float32) *ValidationError {
	return &ValidationError{Kind: "bbox", Message: fmt.Sprintf(
		"invalid bbox %v. Expected \"min_lon,min_lat,max_lon,max_lat\" where lat is in "+
			"[-90, 90] and lon is in [-180, 180] and min <= max", value)}
}

func Layer(value string, valid []string) *ValidationError {
	return &ValidationError{Kind: "layer", Message: fmt.Sprintf(
		"invalid layer %q. Allowed layers are %v", value, valid)}
}

func Lang(value string, valid []string) *ValidationError {
	return &ValidationError{Kind: "lang", Message: fmt.Sprintf(
		"invalid language %q. Allowed languages are %v", value, valid)}
}

func LocationBias() *ValidationError {
	return &ValidationError{Kind: "location_bias", Message: "must use all or none of lon, lat, scale, zoom"}
}

func Required(field string) *ValidationError {
	return &ValidationError{Kind: field, Message: fmt.Sprintf("%s is required", field)}
}

// BackendError wraps a fault returned by the remote search cluster. Status
// is passed through byte-for-byte when the backend supplied one; when it
// didn't, callers should use StatusUnknown below (surfaced as 418).
type BackendError struct {
	Status  int
	Message string
}

const StatusUnknown = http.StatusTeapot

func (e *BackendError) Error() string { return e.Message }
func (e *BackendError) StatusCode() int {
	if e.Status == 0 {
		return StatusUnknown
	}
	return e.Status
}

func Backend(status int, message string) *BackendError {
	return &BackendError{Status: status, Message: message}
}

// InternalError covers pool exhaustion, header construction, and
// unexpected decode failures - anything that isn't the caller's fault.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string   { return e.Message }
func (e *InternalError) StatusCode() int { return http.StatusInternalServerError }

func Internal(format string, args ...interface{}) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}
