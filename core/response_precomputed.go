package core

import (
	"encoding/json"
	"net/http"
)

// Standard response codes
const (
	// oks
	CodeOkHealth     = "ok_health"
	CodeOkRoutesList = "ok_routes_list"

	// errors
	CodeErrorInternal            = "err_internal"
	CodeErrorNotFound            = "err_not_found"
	CodeErrorTooManyRequests     = "err_too_many_requests"
	CodeErrorRequestBodyTooLarge = "err_request_body_too_large"
	CodeErrorNoAuthHeader        = "err_no_auth_header"
	CodeErrorInvalidTokenFormat  = "err_invalid_token_format"
	CodeErrorJwtTokenExpired     = "err_token_expired"
	CodeErrorJwtInvalidToken     = "err_invalid_token"
	CodeErrorAuthDisabled        = "err_auth_disabled"
	CodeErrorInvalidContentType  = "err_invalid_content_type"
	CodeErrorSchemaGeneration    = "err_schema_generation"
)

// precomputeBasicResponse runs during initialization, so the JSON body
// is marshaled once and request handlers only copy bytes.
func precomputeBasicResponse(status int, code, message string) jsonResponse {
	basic := JsonBasic{
		Status:  status,
		Code:    code,
		Message: message,
	}
	body, _ := json.Marshal(basic)
	return jsonResponse{status: status, body: body}
}

// Precomputed error and ok responses with status codes
var (
	okHealth = precomputeBasicResponse(http.StatusOK, CodeOkHealth, "OK")

	errorInternal            = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorInternal, "Internal server error")
	errorNotFound            = precomputeBasicResponse(http.StatusNotFound, CodeErrorNotFound, "Requested resource not found")
	errorTooManyRequests     = precomputeBasicResponse(http.StatusTooManyRequests, CodeErrorTooManyRequests, "Too many requests, please try again later")
	errorRequestBodyTooLarge = precomputeBasicResponse(http.StatusRequestEntityTooLarge, CodeErrorRequestBodyTooLarge, "Request body exceeds the allowed size")
	errorNoAuthHeader        = precomputeBasicResponse(http.StatusUnauthorized, CodeErrorNoAuthHeader, "Authorization header is required")
	errorInvalidTokenFormat  = precomputeBasicResponse(http.StatusUnauthorized, CodeErrorInvalidTokenFormat, "Invalid authorization token format")
	errorJwtTokenExpired     = precomputeBasicResponse(http.StatusUnauthorized, CodeErrorJwtTokenExpired, "Authentication token has expired")
	errorJwtInvalidToken     = precomputeBasicResponse(http.StatusUnauthorized, CodeErrorJwtInvalidToken, "Invalid authentication token")
	errorAuthDisabled        = precomputeBasicResponse(http.StatusServiceUnavailable, CodeErrorAuthDisabled, "Authentication is not configured")
	errorInvalidContentType  = precomputeBasicResponse(http.StatusUnsupportedMediaType, CodeErrorInvalidContentType, "Invalid content type")
	errorSchemaGeneration    = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorSchemaGeneration, "Failed to generate API schema")
)
