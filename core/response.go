package core

import (
	"encoding/json"
	"net/http"
)

type jsonResponse struct {
	status int
	body   []byte
}

// JsonBasic contains the basic response fields. All responses carry them.
type JsonBasic struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JsonWithData is used for structured JSON responses with a payload.
type JsonWithData struct {
	JsonBasic
	Data any `json:"data,omitempty"`
}

// Default headers for API JSON responses. nosniff keeps browsers from
// second-guessing the content type; no-store keeps dynamic API output
// out of caches.
var apiJsonDefaultHeaders = map[string]string{
	"Content-Type":            "application/json; charset=utf-8",
	"X-Content-Type-Options":  "nosniff",
	"Cache-Control":           "no-store, no-cache, must-revalidate",
	"X-Frame-Options":         "DENY",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
}

func setHeaders(w http.ResponseWriter, headers map[string]string) {
	for k, v := range headers {
		w.Header().Set(k, v)
	}
}

// writeJsonError writes a precomputed JSON error response.
func writeJsonError(w http.ResponseWriter, resp jsonResponse) {
	setHeaders(w, apiJsonDefaultHeaders)
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}

// writeJsonOk writes a precomputed JSON success response.
func writeJsonOk(w http.ResponseWriter, resp jsonResponse) {
	setHeaders(w, apiJsonDefaultHeaders)
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}

// WriteJsonResponse writes a precomputed response, such as the one
// returned by Validator.ContentType.
func WriteJsonResponse(w http.ResponseWriter, resp jsonResponse) {
	writeJsonError(w, resp)
}

// TooManyRequests writes the precomputed 429 JSON response.
func TooManyRequests(w http.ResponseWriter) {
	writeJsonError(w, errorTooManyRequests)
}

// WriteJsonWithData writes a structured JSON response with the provided data.
func WriteJsonWithData(w http.ResponseWriter, resp JsonWithData) {
	setHeaders(w, apiJsonDefaultHeaders)
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp)
}

func NewJsonWithData(status int, code, message string, data any) *JsonWithData {
	return &JsonWithData{
		JsonBasic: JsonBasic{
			Status:  status,
			Code:    code,
			Message: message,
		},
		Data: data,
	}
}
