package models

// Response is the uniform envelope wrapping every API response. Exactly one
// of Data/Error is set depending on Success.
type Response struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func ErrorResponse(code, message, details string) Response {
	return Response{
		Success: false,
		Error:   &ErrorDetail{Code: code, Message: message, Details: details},
	}
}
