// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxJSONBody caps JSON request bodies at 1 MB. Media uploads use
// multipart and have their own limit.
const maxJSONBody = 1 << 20

// envelope is the uniform JSON response shape. Every endpoint returns it:
// success carries data, failure carries error and optionally a per-field
// errors map from form validation.
type envelope struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// respondData writes a success envelope with the given payload.
func respondData(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, envelope{Success: true, Data: data})
}

// respondError writes a failure envelope with a single message.
func respondError(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, envelope{Success: false, Error: message})
}

// respondFieldErrors writes a failure envelope carrying a field → message map.
func respondFieldErrors(w http.ResponseWriter, status int, message string, errs map[string]string) {
	writeEnvelope(w, status, envelope{Success: false, Error: message, Errors: errs})
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

// decodeJSON reads a size-limited JSON request body into dst. Unknown
// fields are tolerated so frontend payloads may carry extra keys.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody)).Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
