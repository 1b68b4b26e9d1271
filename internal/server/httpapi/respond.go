package httpapi

import (
	"encoding/json"
	"net/http"
)

// messageResponse is the uniform JSON body for status and error replies.
type messageResponse struct {
	Message string `json:"message"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal server error."}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func respondWithMessage(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, messageResponse{Message: message})
}
