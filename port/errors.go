package port

import "errors"

// ServiceID identifies the API that detected an error.
type ServiceID uint8

const (
	ServiceInit                 ServiceID = 0x00
	ServiceSetPinDirection      ServiceID = 0x01
	ServiceRefreshPortDirection ServiceID = 0x02
	ServiceGetVersionInfo       ServiceID = 0x03
	ServiceSetPinMode           ServiceID = 0x04
	ServicePinState             ServiceID = 0x05
)

func (s ServiceID) String() string {
	switch s {
	case ServiceInit:
		return "Init"
	case ServiceSetPinDirection:
		return "SetPinDirection"
	case ServiceRefreshPortDirection:
		return "RefreshPortDirection"
	case ServiceGetVersionInfo:
		return "GetVersionInfo"
	case ServiceSetPinMode:
		return "SetPinMode"
	case ServicePinState:
		return "PinState"
	default:
		return "service 0x" + hex8(uint8(s))
	}
}

// ErrorCode is a development error code as reported to the ErrorReporter.
type ErrorCode uint8

const (
	CodeOK                    ErrorCode = 0x00
	CodeParamInvalidMode      ErrorCode = 0x0D
	CodeParamConfig           ErrorCode = 0x10
	CodeParamInvalidPinID     ErrorCode = 0x14
	CodeParamPointer          ErrorCode = 0x15
	CodeModeUnchangeable      ErrorCode = 0x20
	CodeDirectionUnchangeable ErrorCode = 0x23
	CodeUninit                ErrorCode = 0xF0
)

var (
	ErrParamConfig           = errors.New("port: invalid configuration")
	ErrParamInvalidMode      = errors.New("port: invalid pin mode")
	ErrParamInvalidPinID     = errors.New("port: invalid pin id")
	ErrParamPointer          = errors.New("port: nil output buffer")
	ErrModeUnchangeable      = errors.New("port: pin mode unchangeable")
	ErrDirectionUnchangeable = errors.New("port: pin direction unchangeable")
	ErrUninit                = errors.New("port: driver not initialized")
	ErrUnknownCode           = errors.New("port: unknown error code")
)

// Err returns the sentinel error for c, or nil for CodeOK.
func (c ErrorCode) Err() error {
	switch c {
	case CodeOK:
		return nil
	case CodeParamInvalidMode:
		return ErrParamInvalidMode
	case CodeParamConfig:
		return ErrParamConfig
	case CodeParamInvalidPinID:
		return ErrParamInvalidPinID
	case CodeParamPointer:
		return ErrParamPointer
	case CodeModeUnchangeable:
		return ErrModeUnchangeable
	case CodeDirectionUnchangeable:
		return ErrDirectionUnchangeable
	case CodeUninit:
		return ErrUninit
	default:
		return ErrUnknownCode
	}
}

// Error is returned by Driver operations. It unwraps to the sentinel of its
// code, so callers match it with errors.Is.
type Error struct {
	Service ServiceID
	Code    ErrorCode
}

func (e *Error) Error() string {
	return e.Service.String() + ": " + e.Code.Err().Error()
}

func (e *Error) Unwrap() error {
	return e.Code.Err()
}

// CodeOf extracts the error code carried by err. Errors that did not come
// from a Driver map to CodeOK when nil and CodeParamConfig otherwise.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeParamConfig
}

// ErrorReporter receives development errors. It must not block.
type ErrorReporter interface {
	ReportError(moduleID uint16, instanceID uint8, service ServiceID, code ErrorCode)
}

// ReporterFunc adapts a function to ErrorReporter.
type ReporterFunc func(moduleID uint16, instanceID uint8, service ServiceID, code ErrorCode)

func (f ReporterFunc) ReportError(moduleID uint16, instanceID uint8, service ServiceID, code ErrorCode) {
	f(moduleID, instanceID, service, code)
}

// DebugReporter writes every report to the debug writer.
type DebugReporter struct{}

func (DebugReporter) ReportError(moduleID uint16, instanceID uint8, service ServiceID, code ErrorCode) {
	DebugPrintln("[PORT] error module=" + Utoa(uint32(moduleID)) +
		" instance=" + Utoa(uint32(instanceID)) +
		" api=" + service.String() +
		" code=0x" + hex8(uint8(code)))
}
