package models

const (
	MsgConnectFailed        = "Could not connect to the server."
	MsgBackendConnectFailed = "Could not connect to the backend server."
)

// ApiResult is the normalized shape returned by every backend call.
type ApiResult struct {
	Success  bool     `json:"success" yaml:"success"`
	Message  string   `json:"message,omitempty" yaml:"message,omitempty"`
	Summary  string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// NewConnectFailure is the result for a call that never got a usable response.
func NewConnectFailure(message string) ApiResult {
	return ApiResult{
		Success: false,
		Message: message,
	}
}
