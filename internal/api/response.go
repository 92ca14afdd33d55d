// File: internal/api/response.go
package api

// Response is the uniform envelope returned by every endpoint.
// swagger:model api.Response
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Users retrieved successfully"`
	Data    any    `json:"data,omitempty"`
}

// Succeed wraps data in a successful envelope.
func Succeed(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds a failed envelope carrying only the message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
