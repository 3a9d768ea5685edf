package rest

import (
	"encoding/json"
	"net/http"

	"github.com/honeycarbs/vacancy-gateway/internal/result"
)

// WriteJSONError writes {"error": message} with the given status
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, map[string]string{"error": message})
}

// RespondWithJSON writes payload as JSON
func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// HTTPStatus maps a Result onto the status code the REST surface answers with
func HTTPStatus[T any](res result.Result[T]) int {
	return result.Match(res, result.Cases[T, int]{
		Success:            func(T) int { return http.StatusOK },
		NetworkUnavailable: func() int { return http.StatusServiceUnavailable },
		RemoteError: func(code int) int {
			if code == http.StatusNotFound {
				return http.StatusNotFound
			}
			return http.StatusBadGateway
		},
		TransportFailure: func(kind result.TransportKind) int {
			if kind == result.TransportTimeout {
				return http.StatusGatewayTimeout
			}
			return http.StatusBadGateway
		},
	})
}

func writeResult[T any](w http.ResponseWriter, res result.Result[T]) {
	RespondWithJSON(w, HTTPStatus(res), result.ToEnvelope(res))
}
