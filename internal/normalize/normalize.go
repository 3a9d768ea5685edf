// Package normalize turns raw gateway outcomes into result.Result values.
// Nothing in here returns an error or lets a panic escape.
package normalize

import (
	"bytes"
	"fmt"

	"github.com/honeycarbs/vacancy-gateway/internal/result"
	"github.com/honeycarbs/vacancy-gateway/pkg/hh"
)

// Decoder parses a 2xx body into a payload
type Decoder[T any] func(body []byte) (T, error)

// Normalize classifies one outcome; the first matching rule wins:
// timeout, other I/O failure, non-2xx or undecodable body, success.
// Callers are expected to handle hh.FailureCanceled before calling;
// if one slips through it is reported as an I/O failure.
func Normalize[T any](outcome hh.RawOutcome, decode Decoder[T]) result.Result[T] {
	switch outcome.Failure {
	case hh.FailureTimeout:
		return result.TransportFailure[T](result.TransportTimeout)
	case hh.FailureIO, hh.FailureCanceled:
		return result.TransportFailure[T](result.TransportIO)
	}

	status := statusCode(outcome.Status)
	if status < 200 || status > 299 || outcome.Err != nil {
		return result.RemoteError[T](status)
	}
	if len(bytes.TrimSpace(outcome.Body)) == 0 || decode == nil {
		return result.RemoteError[T](status)
	}

	payload, err := safeDecode(decode, outcome.Body)
	if err != nil {
		return result.RemoteError[T](status)
	}
	return result.Success(payload)
}

func statusCode(s int) int {
	if s < 100 || s > 999 {
		return result.StatusUnknown
	}
	return s
}

func safeDecode[T any](decode Decoder[T], body []byte) (payload T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			payload, err = zero, fmt.Errorf("normalize: decoder panic: %v", r)
		}
	}()
	return decode(body)
}
