package errors

import "time"

// HTTPErrorInfo is the wire form of every error this service returns. The
// dependent customer/creature/training services produce the same shape,
// which is what lets the remote clients re-parse it.
type HTTPErrorInfo struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Message   string    `json:"message"`
}

// NewHTTPErrorInfo stamps an error body for the given request path.
func NewHTTPErrorInfo(path, message string) HTTPErrorInfo {
	return HTTPErrorInfo{
		Timestamp: time.Now().UTC(),
		Path:      path,
		Message:   message,
	}
}
