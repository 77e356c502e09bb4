package response

import (
	"time"
)

// Outcome is the result of a single registry command.
type Outcome struct {
	Message  string   `json:"message"`
	Error    *Error   `json:"error,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// Metadata includes command tracing and timing.
type Metadata struct {
	CommandID string `json:"command_id"`
	Timestamp string `json:"timestamp"`
}

// OK reports whether the command succeeded.
func (o Outcome) OK() bool {
	return o.Error == nil
}

// Err returns the failure as an error, or nil on success.
func (o Outcome) Err() error {
	if o.Error == nil {
		return nil
	}
	return o.Error
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success builds a successful outcome with the given confirmation message.
func Success(commandID, message string) Outcome {
	return Outcome{
		Message:  message,
		Metadata: buildMetadata(commandID),
	}
}

// Fail builds a failed outcome. An empty message falls back to GetMessage.
func Fail(commandID string, code ErrCode, message string) Outcome {
	if message == "" {
		message = GetMessage(code)
	}
	return Outcome{
		Message:  message,
		Error:    &Error{Code: code, Message: message},
		Metadata: buildMetadata(commandID),
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ────────────────────────────────────────────────────────────────────────────

func buildMetadata(commandID string) Metadata {
	if commandID == "" {
		commandID = NewCommandID() // Fallback if caller did not assign one
	}
	return Metadata{
		CommandID: commandID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
