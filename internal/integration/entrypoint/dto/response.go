// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorBody carries the machine code and human message of a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// SuccessResponse is the envelope for successful requests.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// NewErrorResponse builds a failed-request envelope.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   ErrorBody{Code: code, Message: message},
	}
}

// NewSuccessResponse builds a successful-request envelope.
func NewSuccessResponse(data interface{}) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
	}
}
