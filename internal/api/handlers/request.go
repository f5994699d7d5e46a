package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dom/floricola-erp/internal/api/respond"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads at most maxBodyBytes into v. An empty body decodes as {}
// so missing-field validation reports it. On failure the error response has
// already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respond.Error(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		return false
	}
	respond.Error(w, http.StatusBadRequest, MsgInvalidBody)
	return false
}
