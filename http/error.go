package http

import (
	"net/http"

	"github.com/pacchoferes/dispatch"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	dispatch.ECONFLICT: http.StatusConflict,
	dispatch.EINVALID:  http.StatusUnprocessableEntity,
	dispatch.ENOTFOUND: http.StatusNotFound,
	dispatch.EABORTED:  http.StatusInternalServerError,
	dispatch.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body of an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code and human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error writes an application error as JSON.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := dispatch.ErrorCode(err), dispatch.ErrorMessage(err)
	writeJSON(w, ErrorStatusCode(code), ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}
