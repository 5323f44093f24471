package device

import (
	"errors"
	"fmt"
	"os"

	"github.com/muurk/kasactl/internal/protocol"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeIO indicates a transport failure (connect refused, timeout,
	// connection reset, short write)
	ErrTypeIO ErrorType = iota
	// ErrTypeMalformedJSON indicates the decoded response text is not valid JSON
	ErrTypeMalformedJSON
	// ErrTypeDeviceReported indicates the plug answered with a nonzero err_code
	ErrTypeDeviceReported
	// ErrTypeAddressParse indicates the device address string is malformed
	ErrTypeAddressParse
	// ErrTypeMissingAddress indicates a required host or port was not supplied
	ErrTypeMissingAddress
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeIO:
		return "I/O Error"
	case ErrTypeMalformedJSON:
		return "Malformed JSON"
	case ErrTypeDeviceReported:
		return "Device Error"
	case ErrTypeAddressParse:
		return "Address Parse Error"
	case ErrTypeMissingAddress:
		return "Missing Address Component"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// DeviceError represents a failure while talking to a plug
type DeviceError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Addr    string    // Device address (for context)
	ErrCode int64     // Device-reported code (ErrTypeDeviceReported only)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *DeviceError) Error() string {
	switch {
	case e.Type == ErrTypeDeviceReported:
		return fmt.Sprintf("%s: plug reported the command has failed (err_code = %d)", e.Type, e.ErrCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
}

// Unwrap returns the underlying error for error chain inspection
func (e *DeviceError) Unwrap() error {
	return e.Err
}

// NewIOError creates a transport-level error
func NewIOError(message, addr string, err error) *DeviceError {
	return &DeviceError{
		Type:    ErrTypeIO,
		Message: message,
		Addr:    addr,
		Err:     err,
	}
}

// NewMalformedJSONError creates an error for an undecodable response body
func NewMalformedJSONError(addr string, err error) *DeviceError {
	return &DeviceError{
		Type:    ErrTypeMalformedJSON,
		Message: "response is not valid JSON",
		Addr:    addr,
		Err:     err,
	}
}

// NewDeviceReportedError creates an error for a nonzero err_code
func NewDeviceReportedError(addr string, errCode int64) *DeviceError {
	return &DeviceError{
		Type:    ErrTypeDeviceReported,
		Addr:    addr,
		ErrCode: errCode,
	}
}

// NewAddressParseError creates an error for a malformed address string
func NewAddressParseError(message string, err error) *DeviceError {
	return &DeviceError{
		Type:    ErrTypeAddressParse,
		Message: message,
		Err:     err,
	}
}

// NewMissingAddressError creates an error for an absent host or port
func NewMissingAddressError(message string) *DeviceError {
	return &DeviceError{
		Type:    ErrTypeMissingAddress,
		Message: message,
	}
}

// IsIOError checks if an error is a transport failure
func IsIOError(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) && devErr.Type == ErrTypeIO
}

// IsTimeout checks if an error is a transport failure caused by an
// elapsed deadline
func IsTimeout(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) && devErr.Type == ErrTypeIO && os.IsTimeout(devErr.Err)
}

// IsMalformedJSON checks if an error reports an undecodable response
func IsMalformedJSON(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) && devErr.Type == ErrTypeMalformedJSON
}

// IsAddressError checks if an error relates to the device address string
func IsAddressError(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) &&
		(devErr.Type == ErrTypeAddressParse || devErr.Type == ErrTypeMissingAddress)
}

// DeviceErrCode extracts the device-reported code from an error.
// The second return is false when the error is not a device-reported
// failure.
func DeviceErrCode(err error) (int64, bool) {
	var devErr *DeviceError
	if errors.As(err, &devErr) && devErr.Type == ErrTypeDeviceReported {
		return devErr.ErrCode, true
	}
	return 0, false
}

// IsKeyNotAvailable checks if an error reports a missing response key
func IsKeyNotAvailable(err error) bool {
	var keyErr *protocol.KeyNotAvailableError
	return errors.As(err, &keyErr)
}

// IsValueShapeError checks if an error reports a value of an unexpected
// JSON kind
func IsValueShapeError(err error) bool {
	var shapeErr *protocol.ValueShapeError
	return errors.As(err, &shapeErr)
}

// IsFrameError checks if an error reports a short or length-mismatched
// response frame
func IsFrameError(err error) bool {
	var shortErr *protocol.ShortResponseError
	var mismatchErr *protocol.LengthMismatchError
	return errors.As(err, &shortErr) || errors.As(err, &mismatchErr)
}
