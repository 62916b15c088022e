package logger

// Context Keys
const (
	ContextKeyRequestID = "request_id"
)

// Log Attribute Keys
const (
	AttrKeyRequestID = "request_id"
)
