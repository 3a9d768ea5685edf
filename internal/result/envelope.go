package result

import "encoding/json"

// Envelope is the wire form of a Result
type Envelope[T any] struct {
	Status     string `json:"status"`
	StatusCode *int   `json:"status_code,omitempty"`
	Transport  string `json:"transport,omitempty"`
	Data       *T     `json:"data,omitempty"`
}

// ToEnvelope flattens r; exactly one of StatusCode, Transport or Data is set
// for a remote error, a transport failure or a success.
func ToEnvelope[T any](r Result[T]) Envelope[T] {
	env := Envelope[T]{Status: r.status.String()}
	switch r.status {
	case StatusSuccess:
		payload := r.payload
		env.Data = &payload
	case StatusRemoteError:
		code := r.code
		env.StatusCode = &code
	case StatusTransportFailure:
		env.Transport = r.transport.String()
	}
	return env
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToEnvelope(r))
}
