package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// Failure is the error shape every endpoint uses: {error:true, message}.
type Failure struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// JSON writes the payload as-is; successful handlers pass the store result
// straight through.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}

// Error writes the standard failure shape with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Failure{Error: true, Message: message})
}
