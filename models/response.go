package models

// Response is the envelope every metasift command writes to stdout.
type Response struct {
	Command string      `json:"command" yaml:"command"`
	Count   int         `json:"count" yaml:"count"`
	Total   int         `json:"total" yaml:"total"`
	Data    interface{} `json:"data" yaml:"data"`
	Error   *ErrorInfo  `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrorInfo provides structured error information.
type ErrorInfo struct {
	Type             string   `json:"error_type" yaml:"error_type"`
	Message          string   `json:"message" yaml:"message"`
	SuggestedActions []string `json:"suggested_actions,omitempty" yaml:"suggested_actions,omitempty"`
}

// NewErrorResponse creates a response for a command that could not run.
func NewErrorResponse(command, errType, message string, actions ...string) Response {
	return Response{
		Command: command,
		Data:    nil,
		Error: &ErrorInfo{
			Type:             errType,
			Message:          message,
			SuggestedActions: actions,
		},
	}
}
