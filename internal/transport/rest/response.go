package rest

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadchandra19/quotestream/pkg/errors"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps ErrorDetails codes to statuses; anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	details, ok := errors.AsErrorDetails(err)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}

	code := http.StatusInternalServerError
	switch errors.ErrorCode(details.Code) {
	case errors.GeneralBadRequestError, errors.UnknownPairError:
		code = http.StatusBadRequest
	case errors.GeneralNotFoundError:
		code = http.StatusNotFound
	}

	writeJSON(w, code, ErrorResponse{
		Error:   http.StatusText(code),
		Code:    details.Code,
		Field:   details.Field,
		Message: details.Message,
	})
}
