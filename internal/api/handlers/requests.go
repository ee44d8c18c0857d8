package handlers

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON декодирует JSON тело запроса в переданную структуру
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
