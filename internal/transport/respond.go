package transport

import (
	"encoding/json"
	"net/http"

	"legitlah-be/internal/logger"

	"go.uber.org/zap"
)

// Every JSON response is an envelope: {"success": bool, "message"?: string, ...}.

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

// Success writes a 200 envelope merging the payload fields.
func Success(w http.ResponseWriter, payload map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

// Fail writes an error envelope. The message must already be safe for
// clients; raw internal errors never go through here.
func Fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

// DecodeJSON parses a request body, reporting malformed input as a
// client problem rather than an internal one.
func DecodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
