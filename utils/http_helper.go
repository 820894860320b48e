package utils

import (
	"net/http"

	"github.com/goccy/go-json"

	"bousai_recommend/models"
)

// WriteJSON 写入JSON响应
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(data)
}

// WriteErrorResponse 写入 {error: string} 形式的错误响应
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, models.ErrorResponse{Error: message})
}
