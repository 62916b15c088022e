package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidUserID     = "Invalid user_id parameter"

	// Pagination error messages
	ErrMsgInvalidPage    = "Invalid page parameter"
	ErrMsgInvalidPerPage = "Invalid per_page parameter"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgPlantDeletedSuccess = "Plant removed"
)
