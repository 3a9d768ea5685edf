// Package result holds the closed outcome type returned by every remote
// operation of the vacancy client.
package result

import "fmt"

// StatusUnknown marks a remote error whose HTTP status could not be determined
const StatusUnknown = -1

// Status is the outcome class of a Result
type Status int

const (
	StatusSuccess Status = iota + 1
	StatusNetworkUnavailable
	StatusRemoteError
	StatusTransportFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNetworkUnavailable:
		return "network_unavailable"
	case StatusRemoteError:
		return "remote_error"
	case StatusTransportFailure:
		return "transport_failure"
	default:
		return "invalid"
	}
}

// TransportKind tells a timeout apart from any other I/O failure
type TransportKind int

const (
	TransportTimeout TransportKind = iota + 1
	TransportIO
)

func (k TransportKind) String() string {
	switch k {
	case TransportTimeout:
		return "timeout"
	case TransportIO:
		return "io"
	default:
		return "invalid"
	}
}

// Result is exactly one of Success, NetworkUnavailable, RemoteError or
// TransportFailure. The zero value is invalid; use the constructors.
type Result[T any] struct {
	status    Status
	payload   T
	code      int
	transport TransportKind
}

func Success[T any](payload T) Result[T] {
	return Result[T]{status: StatusSuccess, payload: payload}
}

func NetworkUnavailable[T any]() Result[T] {
	return Result[T]{status: StatusNetworkUnavailable}
}

// RemoteError carries the literal HTTP status, or StatusUnknown
func RemoteError[T any](code int) Result[T] {
	return Result[T]{status: StatusRemoteError, code: code}
}

func TransportFailure[T any](kind TransportKind) Result[T] {
	return Result[T]{status: StatusTransportFailure, transport: kind}
}

func (r Result[T]) Status() Status {
	return r.status
}

func (r Result[T]) IsSuccess() bool {
	return r.status == StatusSuccess
}

// Payload is set only on Success
func (r Result[T]) Payload() (T, bool) {
	if r.status != StatusSuccess {
		var zero T
		return zero, false
	}
	return r.payload, true
}

// StatusCode is set only on RemoteError
func (r Result[T]) StatusCode() (int, bool) {
	if r.status != StatusRemoteError {
		return 0, false
	}
	return r.code, true
}

// Transport is set only on TransportFailure
func (r Result[T]) Transport() (TransportKind, bool) {
	if r.status != StatusTransportFailure {
		return 0, false
	}
	return r.transport, true
}

func (r Result[T]) String() string {
	switch r.status {
	case StatusRemoteError:
		return fmt.Sprintf("%s(%d)", r.status, r.code)
	case StatusTransportFailure:
		return fmt.Sprintf("%s(%s)", r.status, r.transport)
	default:
		return r.status.String()
	}
}

// Cases has one callback per arm; Match calls exactly one of them.
// A nil callback for the arm that is hit yields the zero value.
type Cases[T, R any] struct {
	Success            func(T) R
	NetworkUnavailable func() R
	RemoteError        func(code int) R
	TransportFailure   func(kind TransportKind) R
}

func Match[T, R any](r Result[T], c Cases[T, R]) R {
	var zero R
	switch r.status {
	case StatusSuccess:
		if c.Success != nil {
			return c.Success(r.payload)
		}
	case StatusNetworkUnavailable:
		if c.NetworkUnavailable != nil {
			return c.NetworkUnavailable()
		}
	case StatusRemoteError:
		if c.RemoteError != nil {
			return c.RemoteError(r.code)
		}
	case StatusTransportFailure:
		if c.TransportFailure != nil {
			return c.TransportFailure(r.transport)
		}
	}
	return zero
}

// Map converts a successful payload and passes every other arm through unchanged
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	switch r.status {
	case StatusSuccess:
		return Success(fn(r.payload))
	case StatusNetworkUnavailable:
		return NetworkUnavailable[U]()
	case StatusRemoteError:
		return RemoteError[U](r.code)
	case StatusTransportFailure:
		return TransportFailure[U](r.transport)
	default:
		return Result[U]{}
	}
}
