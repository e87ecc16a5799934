package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"TRIPWISE_BACK-END/internal/dto"
)

// maxRequestBody caps JSON payloads accepted by handlers
const maxRequestBody = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a dto.ErrorResponse with the given status
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// WriteCodedErrorResponse writes an error response carrying a machine-readable code
func WriteCodedErrorResponse(w http.ResponseWriter, status int, errMsg, message, code string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message, Code: code})
}

// DecodeJSONRequest decodes the request body into dst.
// On failure it writes a 400 response and returns the error.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("request body is empty")
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}
