package dto

// APIResponse is the standard success envelope: {success: true} plus any of
// data, message, and count.
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Subject added successfully"`
	Count   *int        `json:"count,omitempty" example:"3"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the standard error envelope. Error carries the raw driver
// message on server errors.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Failed to fetch subjects"`
	Error   string `json:"error,omitempty"`
}

// NewDataResponse creates a success envelope carrying data
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewMessageResponse creates a success envelope carrying a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// NewListResponse creates a success envelope carrying a count and data
func NewListResponse(count int, data interface{}) APIResponse {
	return APIResponse{Success: true, Count: &count, Data: data}
}

// NewErrorResponse creates an error envelope with a message only
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// NewServerErrorResponse creates an error envelope including the underlying
// error text.
func NewServerErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
