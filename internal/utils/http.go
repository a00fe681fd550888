package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// internalErrorBody is written when the payload itself cannot be encoded.
const internalErrorBody = `{"error":"Internal Server Error"}`

// WriteJSON encodes data and writes it with statusCode and a JSON
// Content-Type. HTML characters are not escaped: test names, bot responses
// and engine analyses are echoed back as stored.
//
// If encoding fails nothing of data is written; the client gets a 500 with
// a generic error body and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	w.Header().Set("Content-Type", "application/json")

	if err := enc.Encode(data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return 0, fmt.Errorf("error encoding JSON response: %w", err)
	}

	w.WriteHeader(statusCode)

	return w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
