package handlers

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeInternalError sends an opaque 500. The underlying error detail is
// included only outside production; full detail is always logged server-side
// by the caller.
func (h *FeedbackHandler) writeInternalError(w http.ResponseWriter, err error) {
	body := map[string]string{"error": "Internal server error"}
	if !h.production && err != nil {
		body["message"] = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, body)
}
