package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrEmptyBody is returned by ReadJSON when the request carries no body.
	ErrEmptyBody = errors.New("request body is empty")
	// ErrTrailingData is returned by ReadJSON when anything but whitespace
	// follows the first JSON value.
	ErrTrailingData = errors.New("request body must contain a single JSON value")
)

// maxBodySize caps the request bodies ReadJSON accepts.
const maxBodySize = 1 << 20

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes the JSON body of r into dst. Unknown keys are ignored.
// An absent or empty body yields ErrEmptyBody, data after the first JSON
// value yields ErrTrailingData.
func ReadJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	return DecodeJSON(io.LimitReader(r.Body, maxBodySize), dst)
}

// DecodeJSON decodes exactly one JSON value from body into dst, with the
// same errors as ReadJSON.
func DecodeJSON(body io.Reader, dst any) error {
	if body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	var rest json.RawMessage
	if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	return nil
}
