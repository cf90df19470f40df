// Package webjson holds the small JSON request/response helpers shared by
// the API handlers.
package webjson

import (
	"encoding/json"
	"net/http"

	"github.com/amayorga/partnerbase/internal/app/system/httperr"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Decode parses the request body into dst. Unknown fields are ignored so
// clients can send extra keys without breaking; oversized bodies fail.
func Decode(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return httperr.New(httperr.KindBadRequest, httperr.CodeValidationError)
	}
	return nil
}

// Respond writes v as a JSON body with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes the conventional `{"message": msg}` success body.
func Message(w http.ResponseWriter, status int, msg string) {
	Respond(w, status, map[string]string{"message": msg})
}
