package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ClientFault marks errors caused by the client's input. The HTTP adapter
// maps them to a 400 response; everything else becomes a 500. The marker
// method is unexported so new fault kinds must be declared here.
type ClientFault interface {
	error
	clientFault()
}

// IsClientFault reports whether any error in the chain is a client fault.
func IsClientFault(err error) bool {
	var cf ClientFault
	return errors.As(err, &cf)
}

// EmptyLocationsError means the locations parameter was absent or empty.
type EmptyLocationsError struct{}

func (*EmptyLocationsError) Error() string {
	return "No locations provided. Add locations in a query string: ?locations=lat1,lon1|lat2,lon2."
}
func (*EmptyLocationsError) clientFault() {}

// SegmentFormatError means one pipe-delimited segment could not be split
// into a lat,lon pair. Position is 1-based.
type SegmentFormatError struct {
	Position     int
	Segment      string
	MissingComma bool
}

func (e *SegmentFormatError) Error() string {
	msg := fmt.Sprintf("Unable to parse location '%s' in position %d.", e.Segment, e.Position)
	if e.MissingComma {
		msg += " Add locations like lat1,lon1|lat2,lon2."
	}
	return msg
}
func (*SegmentFormatError) clientFault() {}

// OutOfRangeError means a coordinate fell outside geographic bounds.
// Latitude violations carry an ordering hint, since swapped lat/lon is the
// most common cause.
type OutOfRangeError struct {
	Position int
	Raw      string
	Latitude bool
	Min, Max float64
}

func (e *OutOfRangeError) Error() string {
	msg := fmt.Sprintf("Unable to parse location '%s' in position %d.", e.Raw, e.Position)
	if e.Latitude {
		msg += fmt.Sprintf(" Latitude must be between %g and %g.", e.Min, e.Max)
		msg += " Provide locations in lat,lon order."
	} else {
		msg += fmt.Sprintf(" Longitude must be between %g and %g.", e.Min, e.Max)
	}
	return msg
}
func (*OutOfRangeError) clientFault() {}

// PolylineDecodeError means the locations string could not be decoded as an
// encoded polyline. The format carries no positional structure to report.
type PolylineDecodeError struct{}

func (*PolylineDecodeError) Error() string {
	return "Unable to parse locations as polyline."
}
func (*PolylineDecodeError) clientFault() {}

// TooManyLocationsError means the batch exceeded the configured ceiling.
type TooManyLocationsError struct {
	Count int
	Limit int
}

func (e *TooManyLocationsError) Error() string {
	return fmt.Sprintf("Too many locations provided (%d), the limit is %d.", e.Count, e.Limit)
}
func (*TooManyLocationsError) clientFault() {}

// UnsupportedMethodError means the requested interpolation method is not in
// the backend's registry. The message lists all valid names so the client
// can self-correct.
type UnsupportedMethodError struct {
	Method    string
	Supported []string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("Invalid interpolation method '%s' not recognized. Valid interpolation methods: %s.",
		e.Method, strings.Join(e.Supported, ", "))
}
func (*UnsupportedMethodError) clientFault() {}

// DatasetNotFoundError means no configured dataset has the requested name.
type DatasetNotFoundError struct {
	Name string
}

func (e *DatasetNotFoundError) Error() string {
	return fmt.Sprintf("Dataset '%s' not in config.", e.Name)
}
func (*DatasetNotFoundError) clientFault() {}

// InputError is raised by the compute backend when it rejects a
// range-valid input for backend-specific reasons, such as a point outside
// the dataset's coverage. It is treated like any other client fault.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }
func (*InputError) clientFault()    {}

// ConfigError means the service configuration failed to load or is
// structurally invalid. It maps to a 500; the client cannot fix it.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }
